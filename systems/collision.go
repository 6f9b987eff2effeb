package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
	"github.com/lixenwraith/templer/physics"
)

// CollisionSystem resolves enemy pairs and enemy-player contacts, charges the
// collision penalty and ends the game when the player runs out of lives
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update walks pairs (i, j) with i < j in spawn order, then enemy i against the
// player. Three or more overlapping bodies resolve pairwise in that order and
// effects may compound within one tick
func (s *CollisionSystem) Update(world *engine.World, _ time.Duration) {
	player := world.Player
	enemies := world.Active()

	for i, a := range enemies {
		for _, b := range enemies[i+1:] {
			physics.ResolvePair(a, b)
		}

		if hit, delta := physics.ResolvePlayer(a, player); hit {
			world.MarkPlayerHit()
			world.Logger().Debug().
				Stringer("kind", a.Kind()).
				Int("hp_delta", delta).
				Float64("hp", player.HP()).
				Msg("player hit")
		}
	}

	if world.PlayerHit() {
		player.AddScore(-world.Config.Scoring.CollisionPenalty)
		world.Timers.Flash.Restart()
		player.SetColor(components.ColorFlash)
	}

	if player.HP() <= 0 {
		world.EndGame()
	}
}
