// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/sim"
)

// ID is the registry identifier.
const ID = "flappy"

// Game implements the Flappy Bird game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.FlappyConfig
	rules   *Rules
	machine *sim.Machine
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads the configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		config.Logger().Warn("config unusable, playing on defaults", "game", ID, "path", configPath, "err", err)
		cfg = config.DefaultFlappyConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts over with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.FlappyConfig) {
	if runtime.ScreenW <= 0 || runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		runtime.ScreenW, runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	g.runtime = runtime
	g.cfg = cfg
	g.rules = NewRules(cfg, runtime.ScreenW, runtime.ScreenH)
	g.machine = sim.NewMachine(g.rules, rand.New(rand.NewSource(runtime.Seed)), runtime.HighScores)
}

// Resize changes the playfield. The bird is re-clamped to the new band so
// a shrinking window never leaves it below the ground.
func (g *Game) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.rules.SetScreen(w, h)
	g.rules.Constrain(&g.machine.Session().Agent)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	events := g.machine.Update(sim.InputFromFrame(in), dt)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.machine.Session()
	return core.GameState{
		Score:     s.Score,
		HighScore: g.machine.HighScore(),
		Phase:     g.machine.Phase(),
		Level:     s.Difficulty.Level,
		Elapsed:   s.Elapsed,
	}
}

// Config returns the active configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Rules returns the active rules.
func (g *Game) Rules() *Rules {
	return g.rules
}

// Machine exposes the state machine for tests and frontends.
func (g *Game) Machine() *sim.Machine {
	return g.machine
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
