package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 17 * time.Millisecond

	// PollInterval is how often the driver loop checks both pacers
	PollInterval = 4 * time.Millisecond
)

// Canvas Defaults
const (
	// DefaultCanvasWidth is the canvas width before the first surface resize
	DefaultCanvasWidth = 500.0

	// DefaultCanvasHeight is the canvas height before the first surface resize
	DefaultCanvasHeight = 500.0
)
