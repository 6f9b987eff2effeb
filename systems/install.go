package systems

import "github.com/lixenwraith/templer/engine"

// Install registers the standard tick pipeline on a world
func Install(world *engine.World) {
	world.AddSystem(NewTimerSystem())
	world.AddSystem(NewSpawnSystem())
	world.AddSystem(NewForceSystem())
	world.AddSystem(NewMotionSystem())
	world.AddSystem(NewBoundarySystem())
	world.AddSystem(NewCollisionSystem())
	world.AddSystem(NewCullSystem())
}

// NewWorld creates a world with the standard pipeline installed
func NewWorld(cfg engine.Config) *engine.World {
	world := engine.NewWorld(cfg)
	Install(world)
	return world
}
