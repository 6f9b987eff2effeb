package constants

import "time"

// Player
const (
	// PlayerRadius is the player's radius after reset
	PlayerRadius = 10.0

	// PlayerStartHP is the number of lives after reset
	PlayerStartHP = 3

	// PlayerMaxSpeed bounds both velocity axes of the player
	PlayerMaxSpeed = 7.0

	// PlayerStartX is the reset position as a fraction of canvas width
	PlayerStartX = 0.4

	// PlayerStartY is the reset position as a fraction of canvas height
	PlayerStartY = 0.8

	// PlayerFlashDuration is how long the player stays in the hit color
	PlayerFlashDuration = 500 * time.Millisecond
)

// Scoring
const (
	// PassiveScoreInterval is the cadence of score-over-time
	PassiveScoreInterval = 1000 * time.Millisecond

	// PassiveScore is granted each PassiveScoreInterval survived
	PassiveScore = 10

	// CollisionPenalty is deducted on any tick the player collided
	CollisionPenalty = 100
)

// Enemy Movement
const (
	// SteerChance is the percent chance per tick a round enemy turns toward the player
	SteerChance = 5
)
