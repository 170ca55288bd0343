package core

// RuntimeConfig contains configuration passed to a game on Reset.
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

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Rows cleared since the last reset
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepEvents describes what happened during one transition.
type StepEvents struct {
	Moved        bool // Active piece changed position or orientation
	Locked       bool // Active piece was locked into the board
	LinesCleared int  // Rows removed by this transition
	Spawned      bool // A new active piece was spawned
	GameOver     bool // The game ended on this transition
	Reset        bool // The game was reset on this transition
}

// StepResult is returned after every tick or command.
type StepResult struct {
	State  GameState
	Events StepEvents
}
