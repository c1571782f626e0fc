package sim

import (
	"math"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// MaxSubstep is the longest slice of time one physics pass may cover.
// Longer frames are split so fast obstacles cannot skip over the agent.
const MaxSubstep = 1.0 / 30.0

// maxSubsteps bounds the work a single absurd frame can cause.
const maxSubsteps = 600

// Input is the edge-triggered control snapshot for one frame.
type Input struct {
	Flap    bool
	Pause   bool
	Start   bool
	Restart bool
}

// InputFromFrame maps platform actions onto machine inputs.
// Jump doubles as start and play-again, Enter starts, R restarts.
func InputFromFrame(f core.InputFrame) Input {
	jump := f.Has(core.ActionJump)
	return Input{
		Flap:    jump,
		Pause:   f.Has(core.ActionPause),
		Start:   jump || f.Has(core.ActionConfirm),
		Restart: jump || f.Has(core.ActionRestart),
	}
}

// Machine sequences Start -> Playing <-> Paused -> GameOver -> Playing and
// runs the simulation components only while Playing.
type Machine struct {
	rules     Rules
	rng       Rand
	store     core.HighScoreStore
	session   Session
	phase     core.Phase
	highScore int
}

// NewMachine creates a machine on the title screen with a fresh session.
// The high score is read from store once; read failures count as 0.
// A nil store keeps the high score in memory only.
func NewMachine(rules Rules, rng Rand, store core.HighScoreStore) *Machine {
	if store == nil {
		store = &MemoryStore{}
	}

	m := &Machine{
		rules: rules,
		rng:   rng,
		store: store,
	}
	if hs, err := store.Load(); err == nil && hs > 0 {
		m.highScore = hs
	}
	m.Reset()
	return m
}

// Reset reinitialises the session and returns to the title screen.
func (m *Machine) Reset() {
	m.resetSession()
	m.phase = core.PhaseStart
}

// Phase returns the current state.
func (m *Machine) Phase() core.Phase {
	return m.phase
}

// Score returns the current run's score.
func (m *Machine) Score() int {
	return m.session.Score
}

// HighScore returns the best score seen, including the current run once it ends.
func (m *Machine) HighScore() int {
	return m.highScore
}

// Session exposes the live session. Intended for tests and renderers that
// need more than View; callers must not mutate it during an Update.
func (m *Machine) Session() *Session {
	return &m.session
}

// View returns a snapshot of the state for rendering.
func (m *Machine) View() View {
	s := &m.session
	return View{
		Phase:     m.phase,
		Agent:     s.Agent,
		Obstacles: s.Arena.Snapshot(),
		Score:     s.Score,
		HighScore: m.highScore,
		Speed:     s.Difficulty.Speed,
		GapSize:   s.Difficulty.GapSize,
		Level:     s.Difficulty.Level,
		Elapsed:   s.Elapsed,
		Clock:     s.Clock,
	}
}

// Update advances the machine by one frame of dt seconds.
// Returns the events that occurred, or nil.
func (m *Machine) Update(in Input, dt float64) []core.Event {
	if dt < 0 {
		dt = 0
	}
	m.session.Clock += dt

	switch m.phase {
	case core.PhaseStart:
		m.rules.Idle(&m.session.Agent, m.session.Clock)
		if in.Start {
			m.phase = core.PhasePlaying
			return []core.Event{core.EventStarted}
		}
		return nil

	case core.PhasePlaying:
		if in.Pause {
			m.phase = core.PhasePaused
			return []core.Event{core.EventPaused}
		}
		return m.advance(in, dt)

	case core.PhasePaused:
		if in.Pause {
			m.phase = core.PhasePlaying
			return []core.Event{core.EventResumed}
		}
		if in.Restart {
			m.restart()
			return []core.Event{core.EventReset}
		}
		return nil

	case core.PhaseGameOver:
		if in.Restart {
			m.restart()
			return []core.Event{core.EventReset}
		}
		return nil
	}

	return nil
}

// advance runs a Playing frame as equal substeps no longer than
// MaxSubstep. The flap lands on the first substep only, and the frame ends
// early once the run is over.
func (m *Machine) advance(in Input, dt float64) []core.Event {
	n := min(maxSubsteps, max(1, int(math.Ceil(dt/MaxSubstep))))
	step := dt / float64(n)

	var events []core.Event
	for i := 0; i < n && m.phase == core.PhasePlaying; i++ {
		events = append(events, m.play(in, step)...)
		in.Flap = false
	}
	return events
}

// play runs one Playing substep: physics, difficulty, obstacles, collision.
func (m *Machine) play(in Input, dt float64) []core.Event {
	var events []core.Event
	s := &m.session

	s.Frames++
	s.Elapsed += dt

	if in.Flap {
		events = append(events, core.EventFlap)
	}
	Integrate(&s.Agent, in.Flap, m.rules.Physics(), dt)
	m.rules.Constrain(&s.Agent)

	if s.Difficulty.Advance(dt) {
		FillActive(s, m.rules, m.rng)
		events = append(events, core.EventLevelUp)
	}

	if StepObstacles(s, m.rules, m.rng, dt) > 0 {
		events = append(events, core.EventScored)
	}

	if m.rules.Collides(s) {
		m.phase = core.PhaseGameOver
		events = append(events, core.EventCollision)

		if s.Score > m.highScore {
			m.highScore = s.Score
			//nolint:errcheck // Best-effort save, a failed write never ends the game
			m.store.Save(s.Score)
			events = append(events, core.EventNewHighScore)
		}
	}

	return events
}

// restart resets the session and goes straight to Playing.
func (m *Machine) restart() {
	m.resetSession()
	m.phase = core.PhasePlaying
}

func (m *Machine) resetSession() {
	clock := m.session.Clock
	m.session = Session{
		Agent:      m.rules.Spawn(),
		Difficulty: NewDifficulty(m.rules.Difficulty()),
		Clock:      clock,
	}
	m.rules.Layout(&m.session, m.rng)
}

// MemoryStore is a HighScoreStore that keeps the score in memory.
type MemoryStore struct {
	Best int
}

// Load returns the stored score.
func (s *MemoryStore) Load() (int, error) {
	return s.Best, nil
}

// Save replaces the stored score.
func (s *MemoryStore) Save(score int) error {
	s.Best = score
	return nil
}
