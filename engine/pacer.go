package engine

import "time"

// Pacer is one pausable driver: it reports when its interval has elapsed and
// how much time passed since it last fired. Time spent paused is discarded
type Pacer struct {
	interval time.Duration
	last     time.Time
	paused   bool
}

// NewPacer creates a running pacer whose first slice starts at now
func NewPacer(interval time.Duration, now time.Time) *Pacer {
	return &Pacer{interval: interval, last: now}
}

// Interval returns the minimum slice length
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Poll returns the elapsed slice and true when the pacer is due
func (p *Pacer) Poll(now time.Time) (time.Duration, bool) {
	if p.paused {
		return 0, false
	}

	dt := now.Sub(p.last)
	if dt < p.interval {
		return 0, false
	}
	p.last = now
	return dt, true
}

// SetPaused freezes or resumes the pacer, resuming restarts the slice at now
func (p *Pacer) SetPaused(paused bool, now time.Time) {
	if p.paused == paused {
		return
	}
	p.paused = paused
	if !paused {
		p.last = now
	}
}

// IsPaused returns current pause state
func (p *Pacer) IsPaused() bool {
	return p.paused
}
