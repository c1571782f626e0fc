package sim

import "math"

// MaxObstacles is the capacity of the obstacle arena.
const MaxObstacles = 8

// Obstacle is one column pair with a passable gap.
// GapY is the gap's lower edge in y-up worlds and its upper edge in y-down
// worlds; either way the gap spans [GapY, GapY+gapSize].
type Obstacle struct {
	X      float64 // Horizontal position, decreasing over time
	GapY   float64 // Gap offset
	Passed bool    // Whether the agent has already scored on it
}

// Arena is a fixed-capacity set of obstacles. Obstacles are never created or
// destroyed during a session; only the first Len() slots are in play.
type Arena struct {
	items [MaxObstacles]Obstacle
	n     int
}

// Len returns the number of active obstacles.
func (a *Arena) Len() int {
	return a.n
}

// SetLen changes the number of active obstacles, clamped to [0, MaxObstacles].
// Newly activated slots keep whatever they held; callers place them.
func (a *Arena) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxObstacles {
		n = MaxObstacles
	}
	a.n = n
}

// At returns a pointer to the i-th active obstacle.
func (a *Arena) At(i int) *Obstacle {
	return &a.items[i]
}

// Active returns the active obstacles. The slice aliases the arena and must
// not be retained across updates.
func (a *Arena) Active() []Obstacle {
	return a.items[:a.n]
}

// Snapshot returns a copy of the active obstacles.
func (a *Arena) Snapshot() []Obstacle {
	out := make([]Obstacle, a.n)
	copy(out, a.items[:a.n])
	return out
}

// FarthestX returns the largest X among active obstacles.
// Returns -Inf for an empty arena.
func (a *Arena) FarthestX() float64 {
	farthest := math.Inf(-1)
	for i := 0; i < a.n; i++ {
		if a.items[i].X > farthest {
			farthest = a.items[i].X
		}
	}
	return farthest
}

// Place moves slot i to x with a fresh gap and clears its passed flag.
func (a *Arena) Place(i int, x, gapY float64) {
	a.items[i] = Obstacle{X: x, GapY: gapY}
}
