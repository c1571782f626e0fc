package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HighScores persists the best score. Nil means an in-memory store.
	HighScores HighScoreStore
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

// FrameTime returns the nominal seconds per frame for the tick rate.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// HighScoreStore is the external scalar store for the best score.
// Implementations must tolerate missing backing data by returning 0.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Phase is the state of the per-game state machine.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete occurrence emitted by a frame step.
// Frontends react to events (audio, score logging) without polling state.
type Event int

const (
	EventStarted Event = iota + 1
	EventFlap
	EventScored
	EventLevelUp
	EventPaused
	EventResumed
	EventReset
	EventCollision
	EventNewHighScore
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventFlap:
		return "Flap"
	case EventScored:
		return "Scored"
	case EventLevelUp:
		return "LevelUp"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	case EventReset:
		return "Reset"
	case EventCollision:
		return "Collision"
	case EventNewHighScore:
		return "NewHighScore"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score
	HighScore int     // Best score known to the store
	Phase     Phase   // State machine phase
	Level     int     // Difficulty steps taken this run
	Elapsed   float64 // Seconds spent playing this run
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the run is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result carries the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
