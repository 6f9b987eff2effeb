package components

// Direction is one player input force
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionStop
	directionCount
)

// Directions lists every direction in application order
var Directions = [...]Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown, DirectionStop}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionStop:
		return "stop"
	default:
		return "none"
	}
}

// Valid reports whether d is a known direction
func (d Direction) Valid() bool { return d < directionCount }

// ForceSet is the set of currently held directions
type ForceSet uint8

// Add marks a direction as held
func (f *ForceSet) Add(d Direction) {
	if d.Valid() {
		*f |= 1 << d
	}
}

// Remove releases a direction
func (f *ForceSet) Remove(d Direction) {
	if d.Valid() {
		*f &^= 1 << d
	}
}

// Has reports whether a direction is held
func (f ForceSet) Has(d Direction) bool {
	return d.Valid() && f&(1<<d) != 0
}

// Clear releases every direction
func (f *ForceSet) Clear() { *f = 0 }

// Empty reports whether nothing is held
func (f ForceSet) Empty() bool { return f == 0 }
