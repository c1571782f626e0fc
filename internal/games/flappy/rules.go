package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/sim"
)

// Title screen hover.
const (
	idleBobAmplitude = 1.0
	idleBobFrequency = 3.0
)

// Rules binds the terminal playfield to the simulation core.
// Cells and seconds, y grows downward, pipes scroll toward -X.
// The play band is the screen minus the ground rows.
type Rules struct {
	cfg     config.FlappyConfig
	diff    sim.DifficultyParams
	screenW int
	screenH int
}

var _ sim.Rules = (*Rules)(nil)

// NewRules creates rules for a screen of w by h cells.
func NewRules(cfg config.FlappyConfig, w, h int) *Rules {
	r := &Rules{cfg: cfg, diff: cfg.Difficulty.Params()}
	r.SetScreen(w, h)
	return r
}

// SetScreen updates the playfield size. Pipes already in play keep their
// positions; new ones use the new size.
func (r *Rules) SetScreen(w, h int) {
	r.screenW = max(w, 1)
	r.screenH = max(h, 1)
}

// PlayHeight returns the height of the band the bird can fly in.
func (r *Rules) PlayHeight() float64 {
	return float64(r.screenH - r.cfg.Obstacles.GroundHeight)
}

// ScreenWidth returns the playfield width in cells.
func (r *Rules) ScreenWidth() float64 {
	return float64(r.screenW)
}

// Physics returns the bird integrator parameters.
func (r *Rules) Physics() sim.PhysicsParams {
	p := r.cfg.Physics
	return sim.PhysicsParams{
		Gravity:    p.Gravity,
		Jump:       p.JumpImpulse,
		MaxFall:    p.MaxFallSpeed,
		TiltFactor: p.TiltFactor,
		MaxTilt:    p.MaxTilt,
	}
}

// Difficulty returns the ratchet parameters.
func (r *Rules) Difficulty() sim.DifficultyParams {
	return r.diff
}

// Spawn centres the bird in the play band.
func (r *Rules) Spawn() sim.Agent {
	return sim.Agent{X: r.cfg.Player.X, Y: r.spawnY()}
}

func (r *Rules) spawnY() float64 {
	return math.Max(0, (r.PlayHeight()-r.cfg.Player.Height)/2)
}

// Layout queues the first pipes just off the right edge.
func (r *Rules) Layout(s *sim.Session, rng sim.Rand) {
	s.Arena.SetLen(s.Difficulty.Active)

	lo, hi := r.GapRange(s.Difficulty.GapSize)
	for i := 0; i < s.Arena.Len(); i++ {
		x := r.ScreenWidth() + float64(i)*r.cfg.Obstacles.PipeSpacing
		s.Arena.Place(i, x, sim.GapOffset(rng, lo, hi))
	}
}

// Constrain keeps the bird inside the play band and stops it at the edge.
func (r *Rules) Constrain(a *sim.Agent) {
	a.X = r.cfg.Player.X

	bottom := math.Max(0, r.PlayHeight()-r.cfg.Player.Height)
	switch {
	case a.Y < 0:
		a.Y = 0
		a.VY = 0
	case a.Y > bottom:
		a.Y = bottom
		a.VY = 0
	}
}

// Idle hovers the bird on the title screen.
func (r *Rules) Idle(a *sim.Agent, clock float64) {
	a.X = r.cfg.Player.X
	a.Y = r.spawnY() + math.Sin(clock*idleBobFrequency)*idleBobAmplitude
	a.VY = 0
	a.Tilt = 0
}

// Hitbox returns the bird's collision box, shrunk by the inset on each side.
func (r *Rules) Hitbox(a sim.Agent) core.Box {
	p := r.cfg.Player
	return core.NewBox(a.X, a.Y, p.Width, p.Height).Inset(p.HitboxInset)
}

// PipeBoxes returns the solid parts of a pipe column. A positive
// tolerance widens the gap between them.
func (r *Rules) PipeBoxes(o sim.Obstacle, gap float64) (upper, lower core.Box) {
	pw := float64(r.cfg.Obstacles.PipeWidth)
	tol := r.cfg.Player.GapTolerance
	upperH := o.GapY - tol
	lowerY := o.GapY + gap + tol
	return core.NewBox(o.X, 0, pw, upperH), core.NewBox(o.X, lowerY, pw, r.PlayHeight()-lowerY)
}

// Collides reports a hit against the band edges or a pipe.
// A bird clamped to the top or the ground counts as a hit.
func (r *Rules) Collides(s *sim.Session) bool {
	a := s.Agent
	if a.Y <= 0 || a.Y >= r.PlayHeight()-r.cfg.Player.Height {
		return true
	}

	hit := r.Hitbox(a)
	for _, o := range s.Arena.Active() {
		upper, lower := r.PipeBoxes(o, s.Difficulty.GapSize)
		if hit.Intersects(upper) || hit.Intersects(lower) {
			return true
		}
	}
	return false
}

// PassedBy reports whether the pipe's trailing edge is behind the bird.
func (r *Rules) PassedBy(o sim.Obstacle, a sim.Agent) bool {
	return o.X+float64(r.cfg.Obstacles.PipeWidth) < a.X
}

// Despawned reports whether the pipe has left the screen.
func (r *Rules) Despawned(o sim.Obstacle, _ sim.Agent) bool {
	return o.X+float64(r.cfg.Obstacles.PipeWidth) < 0
}

// RespawnX queues the pipe off screen and never closer than the spacing
// to the farthest pipe.
func (r *Rules) RespawnX(farthest float64) float64 {
	edge := r.ScreenWidth() + r.cfg.Obstacles.SpawnSpacing
	if math.IsInf(farthest, -1) {
		return edge
	}
	return math.Max(edge, farthest+r.cfg.Obstacles.PipeSpacing)
}

// GapRange keeps the gap clear of the top and ground margins.
func (r *Rules) GapRange(gapSize float64) (float64, float64) {
	o := r.cfg.Obstacles
	return o.TopMargin, r.PlayHeight() - gapSize - o.BottomMargin
}

// Points awards the current multiplier.
func (r *Rules) Points(s *sim.Session) int {
	return r.Multiplier(s.Elapsed)
}

// Multiplier grows by one every interval of play, up to the maximum.
func (r *Rules) Multiplier(elapsed float64) int {
	sc := r.cfg.Scoring
	if sc.MultiplierInterval <= 0 {
		return 1
	}
	m := 1 + int(math.Floor(elapsed/sc.MultiplierInterval))
	if sc.MaxMultiplier > 0 && m > sc.MaxMultiplier {
		m = sc.MaxMultiplier
	}
	return max(m, 1)
}
