package constants

import "time"

// --- Enemy Ball / Lifesaver ---
const (
	// EnemySpawnInterval is the enemy timer reset value
	EnemySpawnInterval = 150 * time.Millisecond

	// EnemySpawnInitial is the enemy timer value after reset
	EnemySpawnInitial = 200 * time.Millisecond

	// EnemyRollRange is the exclusive upper bound of the enemy spawn roll
	EnemyRollRange = 100

	// EnemySpawnThreshold gates any enemy-timer spawn (roll below it spawns)
	EnemySpawnThreshold = 10

	// BallSpawnThreshold splits balls (below) from lifesavers
	BallSpawnThreshold = 8

	// EnemyRadius is the ball and lifesaver radius
	EnemyRadius = 10.0

	// EnemyMaxSpeed bounds enemy x velocity to ±value and y to [0, value]
	EnemyMaxSpeed = 5.0

	// EnemySpeedMin is the lower bound of the integer spawn speed
	EnemySpeedMin = 2

	// EnemySpeedMax is the inclusive upper bound of the integer spawn speed
	EnemySpeedMax = 6
)

// --- Obstacle / Spiked Wall ---
const (
	// ObstacleSpawnInterval is the obstacle timer reset value
	ObstacleSpawnInterval = 150 * time.Millisecond

	// ObstacleSpawnInitial is the obstacle timer value after reset
	ObstacleSpawnInitial = 200 * time.Millisecond

	// ObstacleRollRange is the exclusive upper bound of the obstacle spawn roll
	ObstacleRollRange = 120

	// ObstacleSpawnThreshold gates any obstacle-timer spawn
	ObstacleSpawnThreshold = 10

	// BlockSpawnThreshold splits obstacles (below) from the spiked wall
	BlockSpawnThreshold = 5

	// ObstacleWidth is the obstacle box width
	ObstacleWidth = 10.0

	// ObstacleHeight is the obstacle box height
	ObstacleHeight = 40.0

	// ObstacleSpeed is the fixed downward spawn speed
	ObstacleSpeed = 5.0

	// ObstacleMaxSpeed bounds obstacle x velocity to ±value and y to [0, value]
	ObstacleMaxSpeed = 5.0

	// SpikedWallMinWidth is the narrowest spiked wall
	SpikedWallMinWidth = 10.0

	// SpikedWallWidthFraction caps wall width as a fraction of canvas width
	SpikedWallWidthFraction = 0.4

	// SpikedWallHeight is the spiked wall box height
	SpikedWallHeight = 50.0

	// SpikedWallHP is large enough that the wall never dies on contact
	SpikedWallHP = 100000

	// SpikedWallSpeed is the fixed downward spawn speed
	SpikedWallSpeed = 3.0

	// SpikedWallMaxSpeedX bounds horizontal wall velocity to ±value
	SpikedWallMaxSpeedX = 3.0

	// SpikedWallMaxSpeedY bounds vertical wall velocity to [0, value]
	SpikedWallMaxSpeedY = 5.0
)

// --- Coin ---
const (
	// CoinSpawnInterval is the coin timer reset value
	CoinSpawnInterval = 600 * time.Millisecond

	// CoinSpawnInitial is the coin timer value after reset
	CoinSpawnInitial = 700 * time.Millisecond

	// CoinRollRange is the exclusive upper bound of the coin spawn roll
	CoinRollRange = 100

	// CoinSpawnThreshold gates a coin spawn
	CoinSpawnThreshold = 2

	// CoinRadius is the coin radius
	CoinRadius = 25.0

	// CoinMaxSpeed bounds coin x velocity to ±value and y to [0, value]
	CoinMaxSpeed = 8.0

	// CoinSpeedMin is the lower bound of the integer spawn speed
	CoinSpeedMin = 2

	// CoinSpeedMax is the inclusive upper bound of the integer spawn speed
	CoinSpeedMax = 7
)
