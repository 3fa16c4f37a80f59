package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	TickRate   int     // Simulation ticks per second (default 60)
	Seed       int64   // RNG seed for deterministic gameplay
	Spawn4Prob float64 // Probability that a spawned tile is a 4
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Spawn4Prob: 0.1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	MaxTile  int  // Highest tile on the grid
	Moves    int  // Moves that changed the grid
	GameOver bool // No move can change the grid
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // The input produced a grid change this tick
}
