package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
	"github.com/lixenwraith/templer/physics"
)

// BoundarySystem keeps bodies inside the side walls and handles bottom exits
type BoundarySystem struct{}

// NewBoundarySystem creates a new boundary system
func NewBoundarySystem() *BoundarySystem {
	return &BoundarySystem{}
}

// Priority returns the system's priority
func (s *BoundarySystem) Priority() int {
	return constants.PriorityBoundary
}

// Update bounces the player off all four walls at the cost of a life, bounces
// enemies off the side walls and pays out enemies leaving through the bottom
func (s *BoundarySystem) Update(world *engine.World, _ time.Duration) {
	area := world.Area()
	player := world.Player

	if physics.ResolveWall(player, area, true) {
		player.AddHP(-1)
		world.MarkPlayerHit()
	}

	world.Each(func(id engine.EntityID, e *components.Entity) {
		physics.ResolveWall(e, area, false)

		// The wall pays nothing and leaves only once entirely off the canvas
		if world.IsWall(id) {
			if physics.FullyPastBottom(e, area) {
				world.RemoveWall()
				world.Logger().Debug().Uint64("id", uint64(id)).Msg("spiked wall exited")
			}
			return
		}

		if physics.PastBottom(e, area) {
			player.AddScore(e.Scored())
			e.Damage()
			world.Destroy(id)
		}
	})
}
