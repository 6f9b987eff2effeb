package engine

import "time"

// Timer is a countdown decremented by elapsed tick time
type Timer struct {
	Interval  time.Duration // Value restored when the timer fires
	Remaining time.Duration
}

// NewTimer creates a timer that first fires after initial and then every interval
func NewTimer(initial, interval time.Duration) Timer {
	return Timer{Interval: interval, Remaining: initial}
}

// Countdown subtracts dt without firing
func (t *Timer) Countdown(dt time.Duration) {
	t.Remaining -= dt
}

// Lapsed reports whether the countdown went below zero
func (t *Timer) Lapsed() bool {
	return t.Remaining < 0
}

// Advance counts down by dt and, once lapsed, restarts and returns true
func (t *Timer) Advance(dt time.Duration) bool {
	t.Countdown(dt)
	if !t.Lapsed() {
		return false
	}
	t.Restart()
	return true
}

// Restart sets the remaining time back to the interval
func (t *Timer) Restart() {
	t.Remaining = t.Interval
}

// Timers groups every countdown the simulation owns
type Timers struct {
	Flash    Timer // Player hit visual
	Score    Timer // Score-over-time cadence
	Enemy    Timer
	Obstacle Timer
	Coin     Timer
}

// newTimers returns the timers in their post-reset state
func newTimers(cfg Config) Timers {
	return Timers{
		Flash:    Timer{Interval: cfg.Player.FlashDuration},
		Score:    NewTimer(cfg.Scoring.PassiveInterval, cfg.Scoring.PassiveInterval),
		Enemy:    NewTimer(cfg.Spawn.Enemy.Initial, cfg.Spawn.Enemy.Interval),
		Obstacle: NewTimer(cfg.Spawn.Obstacle.Initial, cfg.Spawn.Obstacle.Interval),
		Coin:     NewTimer(cfg.Spawn.Coin.Initial, cfg.Spawn.Coin.Interval),
	}
}
