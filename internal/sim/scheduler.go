package sim

import "math"

// Scheduler supplies the variant-specific geometry of obstacle scrolling.
type Scheduler interface {
	// PassedBy reports whether o is behind the agent's scoring reference.
	PassedBy(o Obstacle, a Agent) bool

	// Despawned reports whether o has scrolled far enough to be recycled.
	Despawned(o Obstacle, a Agent) bool

	// RespawnX returns the new position for a recycled obstacle given the
	// current farthest obstacle position (-Inf when none is active).
	RespawnX(farthest float64) float64

	// GapRange returns the valid gap offsets for the given gap size.
	GapRange(gapSize float64) (minGap, maxGap float64)

	// Points returns the score awarded for passing one obstacle.
	Points(s *Session) int
}

// StepObstacles scrolls every active obstacle by the current speed, awards
// points for newly passed obstacles and recycles despawned ones ahead of
// the farthest obstacle. Returns the points earned.
//
// All obstacles move before any is recycled, so a recycled obstacle lands
// exactly RespawnX(farthest) from positions of the same frame.
func StepObstacles(s *Session, sch Scheduler, rng Rand, dt float64) int {
	dx := s.Difficulty.Speed * dt
	items := s.Arena.Active()

	for i := range items {
		items[i].X -= dx
	}

	points := 0
	for i := range items {
		if !items[i].Passed && sch.PassedBy(items[i], s.Agent) {
			items[i].Passed = true
			points += sch.Points(s)
		}
	}

	for i := range items {
		if sch.Despawned(items[i], s.Agent) {
			recycle(s, sch, rng, i)
		}
	}

	s.Score += points
	return points
}

// FillActive activates slots until the arena holds Difficulty.Active
// obstacles, placing each one ahead of the current farthest obstacle.
func FillActive(s *Session, sch Scheduler, rng Rand) {
	for s.Arena.Len() < s.Difficulty.Active {
		i := s.Arena.Len()
		s.Arena.SetLen(i + 1)
		// Park the new slot out of the way so it does not count as farthest.
		s.Arena.Place(i, math.Inf(-1), 0)
		recycle(s, sch, rng, i)
	}
}

func recycle(s *Session, sch Scheduler, rng Rand, i int) {
	x := sch.RespawnX(s.Arena.FarthestX())
	lo, hi := sch.GapRange(s.Difficulty.GapSize)
	s.Arena.Place(i, x, GapOffset(rng, lo, hi))
}
