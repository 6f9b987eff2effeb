package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
)

// CullSystem removes dead and exited enemies
// It runs last in the tick so every other system sees the same arena layout
type CullSystem struct{}

// NewCullSystem creates a new cull system
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

// Update flags enemies without hit points and compacts the arena
// The spiked wall is immortal here, its slot governs its removal
func (s *CullSystem) Update(world *engine.World, _ time.Duration) {
	world.Each(func(id engine.EntityID, e *components.Entity) {
		if world.IsWall(id) {
			return
		}
		if e.HP() <= 0 {
			world.Destroy(id)
		}
	})

	world.Compact()
}
