package systems

import (
	"time"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
)

// SpawnSystem rolls for new enemies whenever a spawn timer lapses
// Every spawn enters just above the top edge of the canvas
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update advances the enemy, obstacle and coin timers and rolls for each that lapsed
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {
	cfg := world.Config.Spawn

	if world.Timers.Enemy.Advance(dt) {
		if roll := world.Rand.IntN(cfg.Enemy.RollRange); roll < cfg.Enemy.Threshold {
			if roll < cfg.Enemy.BallThreshold {
				SpawnBall(world)
			} else {
				SpawnLifesaver(world)
			}
		}
	}

	if world.Timers.Obstacle.Advance(dt) {
		if roll := world.Rand.IntN(cfg.Obstacle.RollRange); roll < cfg.Obstacle.Threshold {
			if roll < cfg.Obstacle.BlockThreshold {
				SpawnObstacle(world)
			} else {
				SpawnSpikedWall(world)
			}
		}
	}

	if world.Timers.Coin.Advance(dt) {
		if roll := world.Rand.IntN(cfg.Coin.RollRange); roll < cfg.Coin.Threshold {
			SpawnCoin(world)
		}
	}
}

// SpawnBall adds an enemy ball with a random entry column and speed
func SpawnBall(world *engine.World) engine.EntityID {
	return spawnRound(world, components.NewBall(world.Config.Spawn.Enemy.Radius))
}

// SpawnLifesaver adds a lifesaver, which heals the player on contact
func SpawnLifesaver(world *engine.World) engine.EntityID {
	return spawnRound(world, components.NewLifesaver(world.Config.Spawn.Enemy.Radius))
}

func spawnRound(world *engine.World, e *components.Entity) engine.EntityID {
	cfg := world.Config.Spawn.Enemy
	e.SetHP(1)
	e.SetVelocityBoundX(-cfg.MaxSpeed, cfg.MaxSpeed)
	e.SetVelocityBoundY(0, cfg.MaxSpeed)
	e.VX = randomSpeed(world, cfg.SpeedMin, cfg.SpeedMax)
	e.VY = randomSpeed(world, cfg.SpeedMin, cfg.SpeedMax)
	e.X = entryX(world, e)
	e.Y = -e.Radius()
	return spawn(world, e)
}

// SpawnCoin adds a large, fast coin worth a bonus when caught
func SpawnCoin(world *engine.World) engine.EntityID {
	cfg := world.Config.Spawn.Coin
	e := components.NewCoin(cfg.Radius)
	e.SetHP(1)
	e.SetVelocityBoundX(-cfg.MaxSpeed, cfg.MaxSpeed)
	e.SetVelocityBoundY(0, cfg.MaxSpeed)
	e.VX = randomSpeed(world, cfg.SpeedMin, cfg.SpeedMax)
	e.VY = randomSpeed(world, cfg.SpeedMin, cfg.SpeedMax)
	e.X = entryX(world, e)
	e.Y = -e.Radius()
	return spawn(world, e)
}

// SpawnObstacle adds a falling rectangle
func SpawnObstacle(world *engine.World) engine.EntityID {
	cfg := world.Config.Spawn.Obstacle
	e := components.NewObstacle(cfg.Width, cfg.Height)
	e.SetHP(1)
	e.SetVelocityBoundX(-cfg.MaxSpeed, cfg.MaxSpeed)
	e.SetVelocityBoundY(0, cfg.MaxSpeed)
	e.VY = cfg.Speed
	e.X = entryX(world, e)
	e.Y = -e.Height() / 2
	return spawn(world, e)
}

// SpawnSpikedWall adds the spiked wall flush against a random side
// It is a no-op returning false while a wall is already active
func SpawnSpikedWall(world *engine.World) (engine.EntityID, bool) {
	if _, _, ok := world.Wall(); ok {
		return 0, false
	}

	cfg := world.Config.Spawn.Obstacle
	area := world.Area()

	width := cfg.WallMinWidth
	if maxWidth := area.Width * cfg.WallWidthFraction; maxWidth > width {
		width += world.Rand.Float64() * (maxWidth - width)
	}

	e := components.NewSpikedWall(width, cfg.WallHeight)
	e.SetHP(cfg.WallHP)
	e.SetVelocityBoundX(-cfg.WallMaxSpeedX, cfg.WallMaxSpeedX)
	e.SetVelocityBoundY(0, cfg.WallMaxSpeedY)
	e.VX = 0
	e.VY = cfg.WallSpeed
	if world.Rand.IntN(2) == 0 {
		e.X = e.Width() / 2
	} else {
		e.X = area.Width - e.Width()/2
	}
	e.Y = -e.Height() / 2

	id, ok := world.SpawnWall(e)
	if ok {
		logSpawn(world, id, e)
	}
	return id, ok
}

func spawn(world *engine.World, e *components.Entity) engine.EntityID {
	id := world.Spawn(e)
	logSpawn(world, id, e)
	return id
}

func logSpawn(world *engine.World, id engine.EntityID, e *components.Entity) {
	world.Logger().Debug().
		Uint64("id", uint64(id)).
		Stringer("kind", e.Kind()).
		Float64("x", e.X).
		Float64("vx", e.VX).
		Float64("vy", e.VY).
		Msg("spawn")
}

// randomSpeed draws a whole-number speed uniformly from [lo, hi]
func randomSpeed(world *engine.World, lo, hi int) float64 {
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + world.Rand.IntN(hi-lo+1))
}

// entryX picks a column keeping the entity one body width clear of both
// walls, narrow canvases fall back to the center
func entryX(world *engine.World, e *components.Entity) float64 {
	area := world.Area()
	span := area.Width - 2*e.Width()
	if span <= 0 {
		return area.Width / 2
	}
	return e.Width() + world.Rand.Float64()*span
}
