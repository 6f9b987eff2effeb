package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/templer/components"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent    IntentType
	Direction components.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyLeft:   {Intent: IntentForce, Direction: components.DirectionLeft},
			tcell.KeyRight:  {Intent: IntentForce, Direction: components.DirectionRight},
			tcell.KeyUp:     {Intent: IntentForce, Direction: components.DirectionUp},
			tcell.KeyDown:   {Intent: IntentForce, Direction: components.DirectionDown},
		},

		Runes: map[rune]KeyEntry{
			'a': {Intent: IntentForce, Direction: components.DirectionLeft},
			'd': {Intent: IntentForce, Direction: components.DirectionRight},
			'w': {Intent: IntentForce, Direction: components.DirectionUp},
			's': {Intent: IntentForce, Direction: components.DirectionDown},
			' ': {Intent: IntentForce, Direction: components.DirectionStop},
			'p': {Intent: IntentPause},
			'f': {Intent: IntentFramePause},
			'r': {Intent: IntentReset},
			'q': {Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event, unknown keys yield IntentNone
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if entry, ok := t.Runes[r]; ok {
			return Intent{Type: entry.Intent, Direction: entry.Direction}
		}
		return Intent{}
	}

	if entry, ok := t.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: entry.Intent, Direction: entry.Direction}
	}
	return Intent{}
}
