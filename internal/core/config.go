package core

// RuntimeConfig contains the frontend parameters passed to a game session.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle spawning
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

// GameState is the summary a game reports to its frontend after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to this session
	Running   bool // Whether the simulation is advancing
	GameOver  bool // Whether the last run has ended
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
