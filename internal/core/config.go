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

// Phase is the lifecycle state of a game simulation.
type Phase int

const (
	PhaseNotStarted Phase = iota // Reset done, waiting for the first start input
	PhaseRunning                 // Ticks advance the simulation
	PhasePaused                  // Ticks are no-ops; entity state is frozen
	PhaseGameOver                // Terminal; only a full restart leaves it
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the platform-visible summary of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Level int   // Current level/tier (1-based; 0 for games without levels)
	Phase Phase // Lifecycle phase
}

// GameOver reports whether the game has reached its terminal state.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events carry everything that happened during the tick for the
// fire-and-forget collaborators (audio feedback, logging).
type StepResult struct {
	State  GameState
	Events []Event
}
