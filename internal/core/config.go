package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
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

// DeltaSeconds returns the length of one tick in seconds.
func (c RuntimeConfig) DeltaSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool // terminal state reached (won or lost)
	Paused   bool
}

// EventKind classifies things a game reports from a tick.
type EventKind int

const (
	EventSound EventKind = iota // Name is the sound to play
	EventPhase                  // Name is the phase just entered
)

// Event is something that happened during a tick which the platform may
// react to (play audio, log).
type Event struct {
	Kind EventKind
	Name string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
