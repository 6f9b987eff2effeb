package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
)

// MotionSystem steers round enemies and integrates every body
type MotionSystem struct{}

// NewMotionSystem creates a new motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update moves the player, then each enemy after an optional steer toward the player
func (s *MotionSystem) Update(world *engine.World, _ time.Duration) {
	player := world.Player
	player.Move()

	chance := world.Config.Spawn.SteerChance
	world.Each(func(_ engine.EntityID, e *components.Entity) {
		if chance > 0 && e.Shape() == components.ShapeCircle && world.Rand.IntN(100) < chance {
			Steer(e, player)
		}
		e.Move()
	})
}

// Steer points the horizontal velocity at the target keeping its magnitude
func Steer(e, target *components.Entity) {
	speed := e.VX
	if speed < 0 {
		speed = -speed
	}
	e.VX = sign(target.X-e.X) * speed
}
