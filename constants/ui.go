package constants

import "time"

// Terminal Raster
const (
	// CellWidth is the canvas pixels spanned by one terminal column
	CellWidth = 8.0

	// CellHeight is the canvas pixels spanned by one terminal row
	CellHeight = 16.0
)

// HUD Layout
const (
	// HUDMargin is the canvas inset of HUD text
	HUDMargin = 10.0

	// HUDLineHeight separates game-over lines
	HUDLineHeight = 32.0
)

// Input
const (
	// KeyHoldWindow keeps a direction held after its last key event, terminals
	// report repeats but never releases
	KeyHoldWindow = 150 * time.Millisecond
)
