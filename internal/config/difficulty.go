package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-fish/internal/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Baseline returns the config with InitialSteps folded into the base values,
// so a reset starts at the preset's level and progresses from there.
func (d DifficultyConfig) Baseline() DifficultyConfig {
	out := d
	for i := 0; i < d.InitialSteps; i++ {
		out.BaseSpeed += d.SpeedIncrement
		if out.BaseGap > d.GapFloor {
			out.BaseGap = math.Max(d.GapFloor, out.BaseGap-d.GapDecrement)
		}
		if out.BaseActive < d.MaxActive {
			out.BaseActive = min(d.MaxActive, out.BaseActive+d.ActiveIncrement)
		}
	}
	out.InitialSteps = 0
	return out
}

// Params converts the config into simulation parameters, presets included.
func (d DifficultyConfig) Params() sim.DifficultyParams {
	b := d.Baseline()
	return sim.DifficultyParams{
		Enabled:         b.Enabled,
		Interval:        b.Interval,
		BaseSpeed:       b.BaseSpeed,
		SpeedIncrement:  b.SpeedIncrement,
		BaseGap:         b.BaseGap,
		GapDecrement:    b.GapDecrement,
		GapFloor:        b.GapFloor,
		BaseActive:      b.BaseActive,
		MaxActive:       b.MaxActive,
		ActiveIncrement: b.ActiveIncrement,
	}
}

// Validate rejects values the simulation cannot run with.
func (d DifficultyConfig) Validate() error {
	switch {
	case d.Enabled && d.Interval <= 0:
		return fmt.Errorf("%w: difficulty interval must be positive, got %g", ErrInvalid, d.Interval)
	case d.BaseSpeed <= 0:
		return fmt.Errorf("%w: base speed must be positive, got %g", ErrInvalid, d.BaseSpeed)
	case d.SpeedIncrement < 0 || d.GapDecrement < 0 || d.ActiveIncrement < 0:
		return fmt.Errorf("%w: difficulty increments must not be negative", ErrInvalid)
	case d.GapFloor <= 0 || d.BaseGap < d.GapFloor:
		return fmt.Errorf("%w: gap %g must be at least the floor %g > 0", ErrInvalid, d.BaseGap, d.GapFloor)
	case d.BaseActive < 1 || d.BaseActive > sim.MaxObstacles:
		return fmt.Errorf("%w: base_active must be in [1, %d], got %d", ErrInvalid, sim.MaxObstacles, d.BaseActive)
	case d.MaxActive < d.BaseActive || d.MaxActive > sim.MaxObstacles:
		return fmt.Errorf("%w: max_active must be in [%d, %d], got %d", ErrInvalid, d.BaseActive, sim.MaxObstacles, d.MaxActive)
	case d.InitialSteps < 0:
		return fmt.Errorf("%w: initial_steps must not be negative", ErrInvalid)
	}
	return nil
}

// Validate checks the fish config.
func (c FishConfig) Validate() error {
	w := c.World
	switch {
	case w.Spacing <= 0:
		return fmt.Errorf("%w: spacing must be positive, got %g", ErrInvalid, w.Spacing)
	case w.DespawnDistance <= 0:
		return fmt.Errorf("%w: despawn_distance must be positive, got %g", ErrInvalid, w.DespawnDistance)
	case w.Ceiling <= w.Floor:
		return fmt.Errorf("%w: ceiling %g must be above floor %g", ErrInvalid, w.Ceiling, w.Floor)
	case w.FishRadius <= 0 || w.ObstacleRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalid)
	case c.Bubbles < 0:
		return fmt.Errorf("%w: bubbles must not be negative", ErrInvalid)
	}
	return c.Difficulty.Validate()
}

// Validate checks the flappy config.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Obstacles.PipeSpacing <= 0:
		return fmt.Errorf("%w: pipe_spacing must be positive, got %g", ErrInvalid, c.Obstacles.PipeSpacing)
	case c.Obstacles.PipeWidth <= 0:
		return fmt.Errorf("%w: pipe_width must be positive, got %d", ErrInvalid, c.Obstacles.PipeWidth)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.HitboxInset < 0 || c.Player.GapTolerance < 0:
		return fmt.Errorf("%w: forgiveness values must not be negative", ErrInvalid)
	case c.Scoring.MaxMultiplier < 1:
		return fmt.Errorf("%w: max_multiplier must be at least 1, got %d", ErrInvalid, c.Scoring.MaxMultiplier)
	}
	return c.Difficulty.Validate()
}
