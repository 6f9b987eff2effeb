package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/templer/components"
)

// HoldTracker emulates key release for terminals, which only report presses
// and auto-repeats. A direction stays held until no event for it arrives within
// the hold window
type HoldTracker struct {
	window   time.Duration
	deadline [len(components.Directions)]time.Time
	held     components.ForceSet
}

// NewHoldTracker creates a tracker, a non-positive window releases on the next Expire
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press or auto-repeat, returns true when the direction was not held before
func (h *HoldTracker) Press(d components.Direction, now time.Time) bool {
	if !d.Valid() {
		return false
	}
	h.deadline[d] = now.Add(h.window)
	if h.held.Has(d) {
		return false
	}
	h.held.Add(d)
	return true
}

// Expire releases directions whose window has lapsed and returns them
func (h *HoldTracker) Expire(now time.Time) []components.Direction {
	if h.held.Empty() {
		return nil
	}

	var released []components.Direction
	for _, d := range components.Directions {
		if h.held.Has(d) && !now.Before(h.deadline[d]) {
			h.held.Remove(d)
			released = append(released, d)
		}
	}
	return released
}

// Held reports whether a direction is currently held
func (h *HoldTracker) Held(d components.Direction) bool {
	return h.held.Has(d)
}

// Release drops every held direction and returns them
func (h *HoldTracker) Release() []components.Direction {
	var released []components.Direction
	for _, d := range components.Directions {
		if h.held.Has(d) {
			released = append(released, d)
		}
	}
	h.held.Clear()
	return released
}

// Machine parses terminal events into intents and tracks held directions
type Machine struct {
	keyTable *KeyTable
	hold     *HoldTracker
}

// NewMachine creates a machine with the default key bindings
func NewMachine(holdWindow time.Duration) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		hold:     NewHoldTracker(holdWindow),
	}
}

// Process converts one terminal event into an intent
// Force intents are reported only on the initial press, repeats extend the hold
func (m *Machine) Process(ev tcell.Event, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		intent := m.keyTable.Lookup(ev)
		if intent.Type == IntentForce && !m.hold.Press(intent.Direction, now) {
			return Intent{}
		}
		return intent
	}
	return Intent{}
}

// Expire returns directions released since the last call
func (m *Machine) Expire(now time.Time) []components.Direction {
	return m.hold.Expire(now)
}

// Release drops every held direction, used on reset
func (m *Machine) Release() []components.Direction {
	return m.hold.Release()
}
