package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Host frames per second (render/input rate, not the simulation rate)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 30,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Event is a notable simulation occurrence, shaped for key/value loggers.
type Event struct {
	Name   string
	Fields []any // Alternating keys and values
}

// StepResult is returned by Game.Advance() after each host frame.
type StepResult struct {
	State  GameState
	Steps  int     // Fixed simulation ticks run during this frame
	Events []Event // Valid until the next Advance call
}

// RunSummary describes a finished or abandoned run for score storage.
type RunSummary struct {
	Score           int
	BricksDestroyed int
	BallsLost       int
	Ticks           uint64
	Cleared         bool
}
