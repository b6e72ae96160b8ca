package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// WithDefaults fills unset fields. A zero seed becomes seed, which lets the
// caller choose between a fixed value and a time-based one.
func (c RuntimeConfig) WithDefaults(seed int64) RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Seed == 0 {
		c.Seed = seed
	}
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int    // Current score
	HighScore    int    // Best score known to this game instance
	NewHighScore bool   // Whether Score beats the best carried into the round
	GameOver     bool   // Whether the game has ended
	Paused       bool   // Whether the game is paused
	Cause        string // Why the round ended, empty while playing
	Ticks        int    // Simulation ticks elapsed in the round
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
