package sim

// Rand is the uniform random source used for gap placement.
// *math/rand.Rand satisfies it; tests supply fixed sequences.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Uniform draws a value in [lo, hi) from r.
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// GapOffset picks a gap position in [minGap, maxGap].
// When the band has collapsed (maxGap <= minGap) it returns minGap exactly
// and does not consume a random draw.
func GapOffset(r Rand, minGap, maxGap float64) float64 {
	if maxGap <= minGap {
		return minGap
	}
	return Uniform(r, minGap, maxGap)
}
