package core

import "time"

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

// MaxTickRate is the fastest supported simulation rate. Faster rates would
// shrink a frame toward zero and stop the game clock.
const MaxTickRate = 1000

// FrameDuration returns the simulated time covered by one tick.
// A non-positive tick rate falls back to 60 ticks per second; rates above
// MaxTickRate are clamped to it.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	rate = Min(rate, MaxTickRate)
	return time.Second / time.Duration(rate)
}

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseStopped Phase = iota // Not started yet, or ended by game over
	PhaseRunning              // Ticking
	PhasePaused               // Frozen mid-run, resumable
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Lives    int   // Remaining lives
	Phase    Phase // Lifecycle phase
	GameOver bool  // Whether the last run ended by losing all lives
}

// Running reports whether the platform should keep ticking.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}

// Paused reports whether the run is frozen and resumable.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// EventKind identifies something observable that happened during a tick.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventLivesChanged
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score"
	case EventLivesChanged:
		return "lives"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event carries the new value of whatever changed. For EventGameOver the
// value is the final score.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
