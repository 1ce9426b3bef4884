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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Round    int    // Round number, starting at 1
	Phase    string // Round phase name for display ("Active", "Ending", ...)
	GameOver bool   // Whether the match has ended
	Paused   bool   // Whether the game is paused
}

// RoundSummary describes one finished round.
type RoundSummary struct {
	Round      int
	PlayerDead bool
	EnemyDead  bool
	Delta      int    // Score change applied at the end of the round
	Score      int    // Score after the change
	Ticks      uint64 // Simulation ticks the round lasted, including the ending delay
}

// Outcome returns "win", "loss" or "draw" from the player's point of view.
func (r RoundSummary) Outcome() string {
	switch {
	case r.Delta > 0:
		return "win"
	case r.Delta < 0:
		return "loss"
	default:
		return "draw"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any rounds that finished this tick.
type StepResult struct {
	State  GameState
	Rounds []RoundSummary
}
