package engine

import (
	"github.com/lixenwraith/templer/components"
)

// Game binds a world to its two independently pausable drivers: the tick
// driver advancing the simulation and the frame driver pacing rendering
type Game struct {
	World *World

	clock TimeProvider
	tick  *Pacer
	frame *Pacer
}

// NewGame creates a game with both drivers running from the clock's current time
func NewGame(world *World, clock TimeProvider) *Game {
	now := clock.Now()
	return &Game{
		World: world,
		clock: clock,
		tick:  NewPacer(world.Config.Tick.Interval, now),
		frame: NewPacer(world.Config.Tick.FrameInterval, now),
	}
}

// Advance runs one simulation tick when the tick driver is due
// Reaching game over pauses the tick driver until Reset
func (g *Game) Advance() bool {
	now := g.clock.Now()
	dt, ok := g.tick.Poll(now)
	if !ok {
		return false
	}

	g.World.Update(dt)
	if g.World.IsGameOver() {
		g.tick.SetPaused(true, now)
	}
	return true
}

// FrameDue reports whether the frame driver wants a redraw
func (g *Game) FrameDue() bool {
	_, ok := g.frame.Poll(g.clock.Now())
	return ok
}

// Pause suspends or resumes the tick driver, rendering is unaffected
func (g *Game) Pause(paused bool) {
	if !paused && g.World.IsGameOver() {
		return
	}
	g.tick.SetPaused(paused, g.clock.Now())
}

// PauseFrames suspends or resumes the frame driver, simulation is unaffected
func (g *Game) PauseFrames(paused bool) {
	g.frame.SetPaused(paused, g.clock.Now())
}

// IsPaused reports whether the tick driver is suspended
func (g *Game) IsPaused() bool {
	return g.tick.IsPaused()
}

// FramesPaused reports whether the frame driver is suspended
func (g *Game) FramesPaused() bool {
	return g.frame.IsPaused()
}

// Reset restarts the run and resumes the tick driver
func (g *Game) Reset() {
	g.World.Reset()
	g.tick.SetPaused(false, g.clock.Now())
}

// IsGameOver reports whether the run has ended
func (g *Game) IsGameOver() bool {
	return g.World.IsGameOver()
}

// ApplyForce starts applying a direction to the player every tick
func (g *Game) ApplyForce(d components.Direction) {
	g.World.ApplyForce(d)
}

// RemoveForce stops applying a direction
func (g *Game) RemoveForce(d components.Direction) {
	g.World.RemoveForce(d)
}

// Summary returns the end-of-run report
func (g *Game) Summary() Summary {
	return g.World.Summary()
}
