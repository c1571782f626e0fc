package sim

import (
	"errors"
	"math"
)

const eps = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// seqRand replays a fixed sequence of draws and counts them.
type seqRand struct {
	vals  []float64
	i     int
	draws int
}

func (r *seqRand) Float64() float64 {
	r.draws++
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// lineRules is a minimal y-up variant: agent pinned at x=0, world [0, 10],
// obstacles are thin columns with a gap of the current size.
type lineRules struct {
	diff     DifficultyParams
	count    int
	spacing  float64
	despawn  float64
	halfSize float64
	points   int
}

func newLineRules() *lineRules {
	return &lineRules{
		diff: DifficultyParams{
			Enabled:         true,
			Interval:        10,
			BaseSpeed:       4,
			SpeedIncrement:  1,
			BaseGap:         4,
			GapDecrement:    1,
			GapFloor:        2,
			BaseActive:      3,
			MaxActive:       3,
			ActiveIncrement: 0,
		},
		count:    3,
		spacing:  10,
		despawn:  5,
		halfSize: 0.5,
		points:   1,
	}
}

func (r *lineRules) Physics() PhysicsParams {
	return PhysicsParams{Gravity: -8, Jump: 6, TiltFactor: 6, MaxTilt: 40}
}

func (r *lineRules) Difficulty() DifficultyParams { return r.diff }

func (r *lineRules) Spawn() Agent { return Agent{X: 0, Y: 5} }

func (r *lineRules) Layout(s *Session, rng Rand) {
	s.Arena.SetLen(r.count)
	lo, hi := r.GapRange(s.Difficulty.GapSize)
	for i := 0; i < r.count; i++ {
		s.Arena.Place(i, 5+float64(i)*r.spacing, GapOffset(rng, lo, hi))
	}
}

func (r *lineRules) Constrain(a *Agent) { a.X = 0 }

func (r *lineRules) Idle(a *Agent, clock float64) { a.Y = 5 + math.Sin(clock) }

func (r *lineRules) Collides(s *Session) bool {
	if s.Agent.Y <= 0 || s.Agent.Y >= 10 {
		return true
	}
	for _, o := range s.Arena.Active() {
		if math.Abs(o.X-s.Agent.X) <= r.halfSize {
			if s.Agent.Y < o.GapY || s.Agent.Y > o.GapY+s.Difficulty.GapSize {
				return true
			}
		}
	}
	return false
}

func (r *lineRules) PassedBy(o Obstacle, a Agent) bool { return o.X < a.X }

func (r *lineRules) Despawned(o Obstacle, a Agent) bool { return o.X < a.X-r.despawn }

func (r *lineRules) RespawnX(farthest float64) float64 {
	if math.IsInf(farthest, -1) {
		return 5
	}
	return farthest + r.spacing
}

func (r *lineRules) GapRange(gapSize float64) (float64, float64) {
	return 1, 10 - gapSize - 1
}

func (r *lineRules) Points(*Session) int { return r.points }

// flakyStore fails every call.
type flakyStore struct {
	saves int
}

var errFlaky = errors.New("disk on fire")

func (s *flakyStore) Load() (int, error) { return 0, errFlaky }

func (s *flakyStore) Save(int) error {
	s.saves++
	return errFlaky
}
