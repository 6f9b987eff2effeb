package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
)

// TimerSystem advances the player flash and score-over-time countdowns
type TimerSystem struct{}

// NewTimerSystem creates a new timer system
func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

// Priority returns the system's priority
func (s *TimerSystem) Priority() int {
	return constants.PriorityTimer
}

// Update restores the player color after a flash and grants passive score
func (s *TimerSystem) Update(world *engine.World, dt time.Duration) {
	flash := &world.Timers.Flash
	flash.Countdown(dt)
	if flash.Lapsed() {
		world.Player.SetColor(components.ColorPlayer)
	}

	if world.Timers.Score.Advance(dt) {
		world.Player.AddScore(world.Config.Scoring.Passive)
		world.Elapsed++
	}
}
