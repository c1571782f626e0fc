// Package config provides YAML and TOML game configuration loading,
// validation and difficulty presets for the Flappy Fish games.
package config

// FishConfig contains all configuration for the Flappy Fish game.
type FishConfig struct {
	Physics    FishPhysics      `yaml:"physics" toml:"physics"`
	World      FishWorld        `yaml:"world" toml:"world"`
	Collision  FishCollision    `yaml:"collision" toml:"collision"`
	Idle       FishIdle         `yaml:"idle" toml:"idle"`
	Bubbles    int              `yaml:"bubbles" toml:"bubbles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FishPhysics defines the fish integrator parameters (world units, y up).
type FishPhysics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	TiltFactor  float64 `yaml:"tilt_factor" toml:"tilt_factor"`
	MaxTilt     float64 `yaml:"max_tilt" toml:"max_tilt"`
}

// FishWorld defines the geometry of the reef.
type FishWorld struct {
	FishX           float64 `yaml:"fish_x" toml:"fish_x"`
	SpawnY          float64 `yaml:"spawn_y" toml:"spawn_y"`
	Floor           float64 `yaml:"floor" toml:"floor"`
	Ceiling         float64 `yaml:"ceiling" toml:"ceiling"`
	PlayTop         float64 `yaml:"play_top" toml:"play_top"`           // Highest point a gap may reach
	BottomMargin    float64 `yaml:"bottom_margin" toml:"bottom_margin"` // Clearance under the lowest gap
	ColumnHeight    float64 `yaml:"column_height" toml:"column_height"`
	FishRadius      float64 `yaml:"fish_radius" toml:"fish_radius"`
	ObstacleRadius  float64 `yaml:"obstacle_radius" toml:"obstacle_radius"`
	Spacing         float64 `yaml:"spacing" toml:"spacing"`
	FirstOffset     float64 `yaml:"first_offset" toml:"first_offset"`
	DespawnDistance float64 `yaml:"despawn_distance" toml:"despawn_distance"`
}

// FishCollision defines the forgiveness applied to column hits.
type FishCollision struct {
	Slop              float64 `yaml:"slop" toml:"slop"`
	MinThreshold      float64 `yaml:"min_threshold" toml:"min_threshold"`
	FallbackFactor    float64 `yaml:"fallback_factor" toml:"fallback_factor"`
	VerticalTolerance float64 `yaml:"vertical_tolerance" toml:"vertical_tolerance"`
}

// FishIdle defines the title screen bob and fin animation.
type FishIdle struct {
	BobAmplitude float64 `yaml:"bob_amplitude" toml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency" toml:"bob_frequency"`
	TailSpeed    float64 `yaml:"tail_speed" toml:"tail_speed"`
	TailSwing    float64 `yaml:"tail_swing" toml:"tail_swing"`
	FinSpeed     float64 `yaml:"fin_speed" toml:"fin_speed"`
	FinSwing     float64 `yaml:"fin_swing" toml:"fin_swing"`
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles" toml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player" toml:"player"`
	Scoring    FlappyScoring    `yaml:"scoring" toml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird (cells/s, y down).
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	TiltFactor   float64 `yaml:"tilt_factor" toml:"tilt_factor"`
	MaxTilt      float64 `yaml:"max_tilt" toml:"max_tilt"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int     `yaml:"pipe_width" toml:"pipe_width"`
	PipeSpacing  float64 `yaml:"pipe_spacing" toml:"pipe_spacing"`
	SpawnSpacing float64 `yaml:"spawn_spacing" toml:"spawn_spacing"`
	TopMargin    float64 `yaml:"top_margin" toml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"`
	GroundHeight int     `yaml:"ground_height" toml:"ground_height"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X            float64 `yaml:"x" toml:"x"`
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	HitboxInset  float64 `yaml:"hitbox_inset" toml:"hitbox_inset"`
	GapTolerance float64 `yaml:"gap_tolerance" toml:"gap_tolerance"`
}

// FlappyScoring defines the time based score multiplier.
type FlappyScoring struct {
	MultiplierInterval float64 `yaml:"multiplier_interval" toml:"multiplier_interval"` // Seconds per +1
	MaxMultiplier      int     `yaml:"max_multiplier" toml:"max_multiplier"`
}

// DifficultyConfig defines the timer driven difficulty ratchet.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	InitialSteps    int     `yaml:"initial_steps" toml:"initial_steps"` // Steps applied before the run starts
	Interval        float64 `yaml:"interval" toml:"interval"`           // Seconds between steps
	BaseSpeed       float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedIncrement  float64 `yaml:"speed_increment" toml:"speed_increment"`
	BaseGap         float64 `yaml:"base_gap" toml:"base_gap"`
	GapDecrement    float64 `yaml:"gap_decrement" toml:"gap_decrement"`
	GapFloor        float64 `yaml:"gap_floor" toml:"gap_floor"`
	BaseActive      int     `yaml:"base_active" toml:"base_active"`
	MaxActive       int     `yaml:"max_active" toml:"max_active"`
	ActiveIncrement int     `yaml:"active_increment" toml:"active_increment"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// Unknown or empty values return "" so the config default is used.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialStepsForPreset returns how many difficulty steps a preset starts at.
func InitialStepsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config based on a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
		d.InitialSteps = 0
	default:
		d.Enabled = true
		d.InitialSteps = InitialStepsForPreset(preset)
	}
}
