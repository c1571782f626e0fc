package sim

import "testing"

func fishDifficulty() DifficultyParams {
	return DifficultyParams{
		Enabled:        true,
		Interval:       120,
		BaseSpeed:      4,
		SpeedIncrement: 1.5,
		BaseGap:        6.5,
		GapDecrement:   0.3,
		GapFloor:       4,
		BaseActive:     6,
		MaxActive:      6,
	}
}

func TestDifficultyBaseline(t *testing.T) {
	d := NewDifficulty(fishDifficulty())

	if d.Speed != 4 || d.GapSize != 6.5 || d.Active != 6 || d.Level != 0 {
		t.Errorf("baseline = speed %f gap %f active %d level %d", d.Speed, d.GapSize, d.Active, d.Level)
	}
}

func TestDifficultyAdvanceFiresAtInterval(t *testing.T) {
	d := NewDifficulty(fishDifficulty())

	if d.Advance(119.5) {
		t.Fatal("step should not fire before the interval")
	}
	if !d.Advance(0.5) {
		t.Fatal("step should fire once the interval is reached")
	}
	if d.Timer() != 0 {
		t.Errorf("timer should reset to zero after a step, got %f", d.Timer())
	}
	if !approxEqual(d.Speed, 5.5) {
		t.Errorf("Speed = %f, expected 5.5", d.Speed)
	}
	if !approxEqual(d.GapSize, 6.2) {
		t.Errorf("GapSize = %f, expected 6.2", d.GapSize)
	}
	if d.Level != 1 {
		t.Errorf("Level = %d, expected 1", d.Level)
	}
}

func TestDifficultyStepAtFloor(t *testing.T) {
	d := NewDifficulty(fishDifficulty())
	d.GapSize = 4

	if !d.Advance(120) {
		t.Fatal("step should fire after the configured interval")
	}
	if !approxEqual(d.Speed, 5.5) {
		t.Errorf("Speed = %f, expected the fixed increment to apply", d.Speed)
	}
	if d.GapSize != 4 {
		t.Errorf("GapSize = %f, expected unchanged floor 4", d.GapSize)
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	d := NewDifficulty(fishDifficulty())
	prevSpeed, prevGap := d.Speed, d.GapSize

	for i := 0; i < 5000; i++ {
		d.Advance(0.75)
		if d.Speed < prevSpeed {
			t.Fatalf("speed decreased at frame %d: %f -> %f", i, prevSpeed, d.Speed)
		}
		if d.GapSize > prevGap {
			t.Fatalf("gap increased at frame %d: %f -> %f", i, prevGap, d.GapSize)
		}
		if d.GapSize < 4 {
			t.Fatalf("gap dropped below floor at frame %d: %f", i, d.GapSize)
		}
		prevSpeed, prevGap = d.Speed, d.GapSize
	}

	if d.GapSize != 4 {
		t.Errorf("after many steps gap should sit at the floor, got %f", d.GapSize)
	}
}

func TestDifficultyClampsOvershoot(t *testing.T) {
	p := fishDifficulty()
	p.GapDecrement = 2
	d := NewDifficulty(p)

	d.Step() // 6.5 -> 4.5
	d.Step() // 4.5 -> 2.5, clamped to 4

	if d.GapSize != 4 {
		t.Errorf("GapSize = %f, expected clamp to floor 4", d.GapSize)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	p := fishDifficulty()
	p.Enabled = false
	d := NewDifficulty(p)

	if d.Advance(1e6) {
		t.Error("disabled difficulty must never step")
	}
	if d.Speed != 4 || d.GapSize != 6.5 {
		t.Errorf("disabled difficulty changed: speed %f gap %f", d.Speed, d.GapSize)
	}
}

func TestDifficultyActiveRamp(t *testing.T) {
	p := DifficultyParams{
		Enabled:         true,
		Interval:        1,
		BaseActive:      3,
		MaxActive:       5,
		ActiveIncrement: 1,
		BaseGap:         9,
		GapFloor:        5,
		GapDecrement:    1,
	}
	d := NewDifficulty(p)

	for i := 0; i < 10; i++ {
		d.Advance(1)
	}
	if d.Active != 5 {
		t.Errorf("Active = %d, expected cap of 5", d.Active)
	}

	d.Reset()
	if d.Active != 3 || d.Level != 0 || d.GapSize != 9 {
		t.Errorf("Reset should restore baseline, got active %d level %d gap %f", d.Active, d.Level, d.GapSize)
	}
}

func TestDifficultyActiveNeverExceedsArena(t *testing.T) {
	p := DifficultyParams{BaseActive: 50, MaxActive: 100, ActiveIncrement: 10}
	d := NewDifficulty(p)

	if d.Active != MaxObstacles {
		t.Errorf("Active = %d, expected arena capacity %d", d.Active, MaxObstacles)
	}
	d.Step()
	if d.Active != MaxObstacles {
		t.Errorf("Active after step = %d, expected arena capacity %d", d.Active, MaxObstacles)
	}
}
