package sim

// DifficultyParams defines the baseline and the per-step ratchet.
type DifficultyParams struct {
	Enabled  bool    // False freezes the baseline for the whole run
	Interval float64 // Seconds of play between steps

	BaseSpeed      float64 // Obstacle speed at reset, units per second
	SpeedIncrement float64 // Added to speed on every step

	BaseGap      float64 // Gap size at reset
	GapDecrement float64 // Removed from gap on every step
	GapFloor     float64 // Gap never shrinks below this

	BaseActive      int // Active obstacles at reset
	MaxActive       int // Upper bound for the active count
	ActiveIncrement int // Added to the active count on every step
}

// Difficulty is the live ratchet state of one session.
// Speed never decreases and GapSize never increases until Reset.
type Difficulty struct {
	params DifficultyParams

	Speed   float64
	GapSize float64
	Active  int
	Level   int // Number of steps applied since reset

	timer float64
}

// NewDifficulty creates a difficulty state at baseline.
func NewDifficulty(p DifficultyParams) Difficulty {
	d := Difficulty{params: p}
	d.Reset()
	return d
}

// Params returns the configuration the state was created with.
func (d *Difficulty) Params() DifficultyParams {
	return d.params
}

// Reset restores the baseline values and clears the timer.
func (d *Difficulty) Reset() {
	d.Speed = d.params.BaseSpeed
	d.GapSize = d.params.BaseGap
	d.Active = clampActive(d.params.BaseActive)
	d.Level = 0
	d.timer = 0
}

// Timer returns the seconds accumulated toward the next step.
func (d *Difficulty) Timer() float64 {
	return d.timer
}

// Advance accumulates dt and applies a step once the interval elapses.
// Returns true if a step fired this call.
func (d *Difficulty) Advance(dt float64) bool {
	if !d.params.Enabled || d.params.Interval <= 0 {
		return false
	}

	d.timer += dt
	if d.timer < d.params.Interval {
		return false
	}

	d.timer = 0
	d.Step()
	return true
}

// Step applies one difficulty increment immediately.
func (d *Difficulty) Step() {
	d.Level++
	d.Speed += d.params.SpeedIncrement

	// Already at (or below) the floor: leave the gap alone.
	if d.GapSize > d.params.GapFloor {
		d.GapSize -= d.params.GapDecrement
		if d.GapSize < d.params.GapFloor {
			d.GapSize = d.params.GapFloor
		}
	}

	limit := clampActive(max(d.params.MaxActive, d.params.BaseActive))
	if d.Active < limit {
		d.Active = min(limit, d.Active+d.params.ActiveIncrement)
	}
}

func clampActive(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxObstacles {
		return MaxObstacles
	}
	return n
}
