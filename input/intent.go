package input

import "github.com/lixenwraith/templer/components"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Gameplay
	IntentForce      // a/d/w/s, arrows, space
	IntentPause      // p, toggles the simulation
	IntentFramePause // f, toggles redraws
	IntentReset      // r
)

// Intent is the semantic result of one terminal event
type Intent struct {
	Type      IntentType
	Direction components.Direction // Valid for IntentForce
}

// String returns the intent name
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentForce:
		return "force"
	case IntentPause:
		return "pause"
	case IntentFramePause:
		return "frame_pause"
	case IntentReset:
		return "reset"
	default:
		return "none"
	}
}
