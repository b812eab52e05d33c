package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score this session
	GameOver bool // Whether the last move ended in a reset
	Won      bool // Whether the board was filled
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step() after each host frame.
type StepResult struct {
	State     GameState
	MoveTicks int // Movement ticks run during the frame
	FoodTicks int // Food ticks run during the frame
}
