package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/engine"
)

const tick = 17 * time.Millisecond

// quietConfig returns a seeded config whose spawners and steering never fire
func quietConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Seed = 7
	cfg.Spawn.SteerChance = 0
	cfg.Spawn.Enemy.Threshold = 0
	cfg.Spawn.Obstacle.Threshold = 0
	cfg.Spawn.Coin.Threshold = 0
	return cfg
}

// placed spawns e at x, y with the given velocity and hit points
func placed(world *engine.World, e *components.Entity, x, y, vx, vy, hp float64) engine.EntityID {
	e.X, e.Y = x, y
	e.SetVelocityBoundX(-10, 10)
	e.SetVelocityBoundY(-10, 10)
	e.VX, e.VY = vx, vy
	e.SetHP(hp)
	return world.Spawn(e)
}
