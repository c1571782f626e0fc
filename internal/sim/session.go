package sim

import "github.com/vovakirdan/flappy-fish/internal/core"

// Session is the mutable state of one run. It is owned by a Machine and
// handed by pointer to the rule hooks; nothing else mutates it.
type Session struct {
	Agent      Agent
	Arena      Arena
	Difficulty Difficulty
	Score      int

	Elapsed float64 // Seconds spent Playing since the last reset
	Clock   float64 // Seconds since the machine was created, for animation
	Frames  int     // Playing frames since the last reset
}

// Rules binds a game variant to the simulation core.
type Rules interface {
	Scheduler

	// Physics returns the integrator parameters.
	Physics() PhysicsParams

	// Difficulty returns the ratchet parameters.
	Difficulty() DifficultyParams

	// Spawn returns the agent's reset pose.
	Spawn() Agent

	// Layout places the initial obstacles after a reset.
	Layout(s *Session, rng Rand)

	// Constrain applies positional limits after integration.
	Constrain(a *Agent)

	// Idle animates the agent on the title screen.
	Idle(a *Agent, clock float64)

	// Collides reports whether the agent hit the bounds or an obstacle.
	Collides(s *Session) bool
}

// View is a read-only snapshot for renderers.
type View struct {
	Phase     core.Phase
	Agent     Agent
	Obstacles []Obstacle
	Score     int
	HighScore int
	Speed     float64
	GapSize   float64
	Level     int
	Elapsed   float64
	Clock     float64
}
