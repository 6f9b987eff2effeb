package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
)

// ForceSystem turns held directions into player velocity changes
type ForceSystem struct{}

// NewForceSystem creates a new force system
func NewForceSystem() *ForceSystem {
	return &ForceSystem{}
}

// Priority returns the system's priority
func (s *ForceSystem) Priority() int {
	return constants.PriorityForce
}

// Update adds one unit of velocity per held direction, Stop decays each axis
// one unit toward zero
func (s *ForceSystem) Update(world *engine.World, _ time.Duration) {
	ApplyForces(world.Player, world.Forces)
}

// ApplyForces applies a force set to an entity's velocity once
func ApplyForces(e *components.Entity, forces components.ForceSet) {
	if forces.Has(components.DirectionLeft) {
		e.VX--
	}
	if forces.Has(components.DirectionRight) {
		e.VX++
	}
	if forces.Has(components.DirectionUp) {
		e.VY--
	}
	if forces.Has(components.DirectionDown) {
		e.VY++
	}
	if forces.Has(components.DirectionStop) {
		e.VX -= sign(e.VX)
		e.VY -= sign(e.VY)
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
