package fish

import (
	"math"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/sim"
)

// Rules binds the reef geometry to the simulation core.
// World units, y grows upward, the fish swims toward +X.
type Rules struct {
	cfg  config.FishConfig
	diff sim.DifficultyParams
}

var _ sim.Rules = (*Rules)(nil)

// NewRules creates rules from a loaded config, presets already applied.
func NewRules(cfg config.FishConfig) *Rules {
	return &Rules{cfg: cfg, diff: cfg.Difficulty.Params()}
}

// Physics returns the fish integrator parameters.
func (r *Rules) Physics() sim.PhysicsParams {
	p := r.cfg.Physics
	return sim.PhysicsParams{
		Gravity:    p.Gravity,
		Jump:       p.JumpImpulse,
		TiltFactor: p.TiltFactor,
		MaxTilt:    p.MaxTilt,
	}
}

// Difficulty returns the ratchet parameters.
func (r *Rules) Difficulty() sim.DifficultyParams {
	return r.diff
}

// Spawn returns the reset pose.
func (r *Rules) Spawn() sim.Agent {
	return sim.Agent{X: r.cfg.World.FishX, Y: r.cfg.World.SpawnY}
}

// Layout places the columns in front of the fish at fixed spacing.
func (r *Rules) Layout(s *sim.Session, rng sim.Rand) {
	w := r.cfg.World
	n := s.Difficulty.Active
	s.Arena.SetLen(n)

	lo, hi := r.GapRange(s.Difficulty.GapSize)
	for i := 0; i < s.Arena.Len(); i++ {
		x := w.FishX + w.FirstOffset + float64(i)*w.Spacing
		s.Arena.Place(i, x, sim.GapOffset(rng, lo, hi))
	}
}

// Constrain pins the fish horizontally. Y is left free so that leaving the
// water column counts as a collision.
func (r *Rules) Constrain(a *sim.Agent) {
	a.X = r.cfg.World.FishX
}

// Idle bobs the fish on the title screen.
func (r *Rules) Idle(a *sim.Agent, clock float64) {
	idle := r.cfg.Idle
	a.X = r.cfg.World.FishX
	a.Y = r.cfg.World.SpawnY + math.Sin(clock*idle.BobFrequency)*idle.BobAmplitude
	a.VY = 0
	a.Tilt = 0
}

// Threshold returns the horizontal distance under which a column is tested
// for a hit. The slop makes near misses forgiving; a slop that eats the
// whole radius falls back to a fraction of it.
func (r *Rules) Threshold() float64 {
	w, c := r.cfg.World, r.cfg.Collision
	sum := w.ObstacleRadius + w.FishRadius
	th := sum - c.Slop
	if th < c.MinThreshold {
		th = sum * c.FallbackFactor
	}
	return th
}

// GapBand returns the Y interval the fish centre must stay within while
// passing a column whose gap starts at gapY.
func (r *Rules) GapBand(gapY, gapSize float64) (lo, hi float64) {
	rad, tol := r.cfg.World.FishRadius, r.cfg.Collision.VerticalTolerance
	return gapY + rad + tol, gapY + gapSize - rad - tol
}

// Collides reports a hit against the floor, the surface or a column.
func (r *Rules) Collides(s *sim.Session) bool {
	w := r.cfg.World
	a := s.Agent
	if a.Y <= w.Floor || a.Y >= w.Ceiling {
		return true
	}

	th := r.Threshold()
	for _, o := range s.Arena.Active() {
		dx := a.X - o.X
		if dx*dx > th*th {
			continue
		}
		lo, hi := r.GapBand(o.GapY, s.Difficulty.GapSize)
		if a.Y < lo || a.Y > hi {
			return true
		}
	}
	return false
}

// PassedBy reports whether the column centre is behind the fish.
func (r *Rules) PassedBy(o sim.Obstacle, a sim.Agent) bool {
	return o.X < a.X
}

// Despawned reports whether the column has scrolled out of view behind.
func (r *Rules) Despawned(o sim.Obstacle, a sim.Agent) bool {
	return o.X < r.cfg.World.FishX-r.cfg.World.DespawnDistance
}

// RespawnX keeps the spacing to the farthest column.
func (r *Rules) RespawnX(farthest float64) float64 {
	w := r.cfg.World
	if math.IsInf(farthest, -1) {
		return w.FishX + w.FirstOffset
	}
	return farthest + w.Spacing
}

// GapRange keeps the whole gap between the seabed margin and the play top.
func (r *Rules) GapRange(gapSize float64) (float64, float64) {
	w := r.cfg.World
	return w.Floor + w.BottomMargin + w.FishRadius, w.PlayTop - gapSize - w.FishRadius
}

// Points awards a flat point per column.
func (r *Rules) Points(*sim.Session) int {
	return 1
}
