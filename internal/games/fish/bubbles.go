package fish

import (
	"math"
	"math/rand"
)

// Bubble field bounds in world units.
const (
	bubbleMinX   = -30.0
	bubbleSpanX  = 60
	bubbleMinZ   = -20.0
	bubbleSpanZ  = 40
	bubbleTop    = 10.0
	bubbleSpawnY = 10
)

// Bubble is a decorative particle. The simulation never reads it.
type Bubble struct {
	X, Y, Z float64
	Speed   float64 // Rise speed, units/s
	Size    float64
	Wobble  float64 // Phase of the sideways drift
	Alpha   float64
}

// BubbleField animates a fixed set of bubbles rising from the seabed.
type BubbleField struct {
	items []Bubble
	rng   *rand.Rand
}

// NewBubbleField scatters n bubbles through the water column.
func NewBubbleField(n int, rng *rand.Rand) *BubbleField {
	f := &BubbleField{items: make([]Bubble, n), rng: rng}
	for i := range f.items {
		b := &f.items[i]
		f.scatter(b)
		b.Y = float64(rng.Intn(bubbleSpawnY))
		b.Speed = 0.3 + float64(rng.Intn(100))/100
		b.Size = 0.08 + float64(rng.Intn(100))/400
		b.Wobble = float64(rng.Intn(360))
		b.Alpha = 0.4 + float64(rng.Intn(60))/100
	}
	return f
}

func (f *BubbleField) scatter(b *Bubble) {
	b.X = bubbleMinX + float64(f.rng.Intn(bubbleSpanX))
	b.Z = bubbleMinZ + float64(f.rng.Intn(bubbleSpanZ))
}

// Update rises every bubble with a sideways wobble and respawns the ones
// that reached the top at the seabed.
func (f *BubbleField) Update(dt float64) {
	for i := range f.items {
		b := &f.items[i]
		b.Y += b.Speed * dt
		b.Wobble += dt * 2
		b.X += math.Sin(b.Wobble) * 0.2 * dt

		if b.Y > bubbleTop {
			b.Y = 0
			f.scatter(b)
		}
	}
}

// Bubbles returns the live particles. Callers must not retain the slice
// across Update calls.
func (f *BubbleField) Bubbles() []Bubble {
	return f.items
}

// Len returns the number of bubbles.
func (f *BubbleField) Len() int {
	return len(f.items)
}
