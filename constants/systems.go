package constants

// System Execution Priorities (lower runs first)
const (
	PriorityTimer     = 10
	PrioritySpawn     = 20
	PriorityForce     = 30
	PriorityMotion    = 40
	PriorityBoundary  = 50
	PriorityCollision = 60
	PriorityCleanup   = 900 // Last: Removes marked entities
)
