package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fish FishConfig
	if err := yaml.Unmarshal(GetDefaultYAML("fish"), &fish); err != nil {
		t.Fatalf("embedded fish.yaml: %v", err)
	}
	if !reflect.DeepEqual(fish, DefaultFishConfig()) {
		t.Errorf("embedded fish.yaml drifted from DefaultFishConfig:\n%+v\n%+v", fish, DefaultFishConfig())
	}

	var flappy FlappyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("flappy"), &flappy); err != nil {
		t.Fatalf("embedded flappy.yaml: %v", err)
	}
	if !reflect.DeepEqual(flappy, DefaultFlappyConfig()) {
		t.Errorf("embedded flappy.yaml drifted from DefaultFlappyConfig:\n%+v\n%+v", flappy, DefaultFlappyConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded config")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFishConfig().Validate(); err != nil {
		t.Errorf("fish defaults invalid: %v", err)
	}
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("flappy defaults invalid: %v", err)
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadFish("")
	if err != nil {
		t.Fatalf("LoadFish: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFishConfig()) {
		t.Errorf("LoadFish() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomTOMLOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reef.toml")
	data := `
bubbles = 40

[world]
spacing = 25.0

[difficulty]
interval = 60.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFish(path)
	if err != nil {
		t.Fatalf("LoadFish(%s): %v", path, err)
	}
	if cfg.Bubbles != 40 || cfg.World.Spacing != 25 || cfg.Difficulty.Interval != 60 {
		t.Errorf("overrides not applied: bubbles %d spacing %f interval %f",
			cfg.Bubbles, cfg.World.Spacing, cfg.Difficulty.Interval)
	}
	if cfg.Physics.Gravity != -8 || cfg.Difficulty.GapFloor != 4 {
		t.Errorf("unnamed keys should keep defaults, got gravity %f floor %f",
			cfg.Physics.Gravity, cfg.Difficulty.GapFloor)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "player:\n  hitbox_inset: 0.5\nscoring:\n  max_multiplier: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if cfg.Player.HitboxInset != 0.5 || cfg.Scoring.MaxMultiplier != 2 {
		t.Errorf("got inset %f multiplier %d", cfg.Player.HitboxInset, cfg.Scoring.MaxMultiplier)
	}
	if cfg.Player.Width != 2 {
		t.Errorf("Player.Width = %f, expected default 2", cfg.Player.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFish(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[world\nspacing = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFish(broken); err == nil {
		t.Error("unparsable explicit config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  spacing: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFish(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, expected ErrInvalid", err)
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "fish.toml")
	if err := os.WriteFile(good, []byte("[world]\nspacing = 25.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		game    string
		path    string
		wantErr bool
	}{
		{"no path", "fish", "", false},
		{"readable fish", "fish", good, false},
		{"missing fish", "fish", filepath.Join(dir, "typo.toml"), true},
		{"missing flappy", "flappy", filepath.Join(dir, "typo.yaml"), true},
		{"unknown game", "pong", good, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFile(tt.game, tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckFile(%q, %q) = %v, wantErr %v", tt.game, tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadSearchesUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "flappy.toml"), []byte("[obstacles]\npipe_width = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if cfg.Obstacles.PipeWidth != 3 {
		t.Errorf("PipeWidth = %d, expected 3 from the user directory", cfg.Obstacles.PipeWidth)
	}
}

func TestLoadSkipsBrokenSearchedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	chdir(t, wd)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "fish.yaml"), []byte("bubbles: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFish("")
	if err != nil {
		t.Fatalf("broken searched file should be skipped, got %v", err)
	}
	if cfg.Bubbles != 150 {
		t.Errorf("Bubbles = %d, expected default 150", cfg.Bubbles)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPresetBaseline(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		speed   float64
		gap     float64
		active  int
	}{
		{"", true, 20, 9, 3},
		{DifficultyEasy, true, 20, 9, 3},
		{DifficultyNormal, true, 24, 8, 4},
		{DifficultyHard, true, 32, 6, 6},
		{DifficultyFixed, false, 20, 9, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			d := DefaultFlappyConfig().Difficulty
			ApplyPreset(&d, tc.preset)
			p := d.Params()

			if p.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", p.Enabled, tc.enabled)
			}
			if p.BaseSpeed != tc.speed || p.BaseGap != tc.gap || p.BaseActive != tc.active {
				t.Errorf("baseline = speed %f gap %f active %d, expected %f %f %d",
					p.BaseSpeed, p.BaseGap, p.BaseActive, tc.speed, tc.gap, tc.active)
			}
		})
	}
}

func TestBaselineRespectsGapFloor(t *testing.T) {
	d := DefaultFishConfig().Difficulty
	d.InitialSteps = 20

	b := d.Baseline()
	if b.BaseGap != d.GapFloor {
		t.Errorf("BaseGap = %f, expected floor %f", b.BaseGap, d.GapFloor)
	}
	if b.InitialSteps != 0 {
		t.Error("Baseline should consume InitialSteps")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero interval", func(c *FlappyConfig) { c.Difficulty.Interval = 0 }},
		{"zero spacing", func(c *FlappyConfig) { c.Obstacles.PipeSpacing = 0 }},
		{"too many pipes", func(c *FlappyConfig) { c.Difficulty.MaxActive = 99 }},
		{"no pipes", func(c *FlappyConfig) { c.Difficulty.BaseActive = 0 }},
		{"gap below floor", func(c *FlappyConfig) { c.Difficulty.BaseGap = 1 }},
		{"negative inset", func(c *FlappyConfig) { c.Player.HitboxInset = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	// A disabled ratchet does not need an interval.
	cfg := DefaultFishConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.Interval = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed difficulty with zero interval should validate, got %v", err)
	}
}

// chdir changes the working directory for the rest of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
