package config

import (
	_ "embed"
)

//go:embed defaults/fish.yaml
var defaultFishYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFishConfig returns the default Flappy Fish configuration.
func DefaultFishConfig() FishConfig {
	return FishConfig{
		Physics: FishPhysics{
			Gravity:     -8.0,
			JumpImpulse: 6.5,
			TiltFactor:  6.0,
			MaxTilt:     40.0,
		},
		World: FishWorld{
			FishX:           -5.0,
			SpawnY:          4.0,
			Floor:           0.0,
			Ceiling:         15.5,
			PlayTop:         8.5,
			BottomMargin:    1.0,
			ColumnHeight:    12.0,
			FishRadius:      0.4,
			ObstacleRadius:  0.8,
			Spacing:         20.0,
			FirstOffset:     10.0,
			DespawnDistance: 12.0,
		},
		Collision: FishCollision{
			Slop:              1.0,
			MinThreshold:      0.05,
			FallbackFactor:    0.2,
			VerticalTolerance: 0.15,
		},
		Idle: FishIdle{
			BobAmplitude: 0.3,
			BobFrequency: 2.0,
			TailSpeed:    8.0,
			TailSwing:    0.3,
			FinSpeed:     6.0,
			FinSwing:     0.2,
		},
		Bubbles: 150,
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Interval:       120.0, // 2 minutes
			BaseSpeed:      4.0,
			SpeedIncrement: 1.5,
			BaseGap:        6.5,
			GapDecrement:   0.3,
			GapFloor:       4.0,
			BaseActive:     6,
			MaxActive:      6,
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      60.0,
			JumpImpulse:  -20.0,
			MaxFallSpeed: 40.0,
			TiltFactor:   -2.0,
			MaxTilt:      40.0,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  30.0,
			SpawnSpacing: 0.0,
			TopMargin:    2.0,
			BottomMargin: 2.0,
			GroundHeight: 1,
		},
		Player: FlappyPlayer{
			X:            10.0,
			Width:        2.0,
			Height:       2.0,
			HitboxInset:  0.2,
			GapTolerance: 0.0,
		},
		Scoring: FlappyScoring{
			MultiplierInterval: 30.0,
			MaxMultiplier:      5,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			Interval:        20.0,
			BaseSpeed:       20.0,
			SpeedIncrement:  4.0,
			BaseGap:         9.0,
			GapDecrement:    1.0,
			GapFloor:        5.0,
			BaseActive:      3,
			MaxActive:       6,
			ActiveIncrement: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fish":
		return defaultFishYAML
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
