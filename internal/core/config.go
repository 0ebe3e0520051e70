package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score (or progress metric for scoreless games)
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Apply after each intent.
type StepResult struct {
	State GameState
	// Changed is false when the intent was a legal no-op
	// (blocked move, rotation into a wall, input after game over).
	Changed bool
}
