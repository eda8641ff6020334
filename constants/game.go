package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the game loop pacing interval
	TickInterval = 50 * time.Millisecond

	// DefaultTicksPerMove advances the snake every Nth tick
	DefaultTicksPerMove = 2
)

// Pit geometry
const (
	DefaultPitWidth  = 40
	DefaultPitHeight = 20

	MinPitWidth  = 20
	MinPitHeight = 20

	// PitMargin is the extra rows and columns required around the bordered
	// pit for the score line and end-of-game messages
	PitMargin = 4
)

// Snake and food rules
const (
	InitialSnakeLength = 3

	// FoodMaxPlacementAttempts bounds the random search for a food cell that
	// is free of the snake. When the bound is exhausted the last drawn cell
	// is kept even if occupied, so on a nearly full board the food may
	// rarely spawn on the snake body.
	FoodMaxPlacementAttempts = 100
)
