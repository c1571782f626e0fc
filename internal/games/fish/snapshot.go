package fish

import "github.com/vovakirdan/flappy-fish/internal/sim"

// Snapshot captures everything a renderer needs for one frame.
type Snapshot struct {
	sim.View

	TailAngle float64 // Radians, tail sway
	FinAngle  float64 // Radians, fin flutter
	Bubbles   []Bubble
}

// Snapshot returns the current game snapshot. Obstacles and bubbles are
// copies and safe to keep.
func (g *Game) Snapshot() Snapshot {
	bubbles := make([]Bubble, g.bubbles.Len())
	copy(bubbles, g.bubbles.Bubbles())

	return Snapshot{
		View:      g.machine.View(),
		TailAngle: g.tailAngle,
		FinAngle:  g.finAngle,
		Bubbles:   bubbles,
	}
}
