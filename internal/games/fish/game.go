// Package fish implements Flappy Fish: a fish holds its depth against
// gravity and swims through gaps in scrolling coral columns.
package fish

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/sim"
)

// ID is the registry identifier.
const ID = "fish"

// Game implements the Flappy Fish game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.FishConfig
	rules   *Rules
	machine *sim.Machine
	bubbles *BubbleField

	tailAngle float64
	finAngle  float64
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

// New creates a new Flappy Fish game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Fish"
}

// Reset loads the configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadFish(configPath)
	if err != nil {
		config.Logger().Warn("config unusable, playing on defaults", "game", ID, "path", configPath, "err", err)
		cfg = config.DefaultFishConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts over with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.FishConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rules = NewRules(cfg)

	// Cosmetic draws use their own source so they never shift the columns.
	g.machine = sim.NewMachine(g.rules, rand.New(rand.NewSource(runtime.Seed)), runtime.HighScores)
	g.bubbles = NewBubbleField(cfg.Bubbles, rand.New(rand.NewSource(runtime.Seed+1)))
	g.tailAngle, g.finAngle = 0, 0
}

// Resize only affects rendering; the reef is resolution independent.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	events := g.machine.Update(sim.InputFromFrame(in), dt)

	clock := g.machine.Session().Clock
	idle := g.cfg.Idle
	g.tailAngle = math.Sin(clock*idle.TailSpeed) * idle.TailSwing
	g.finAngle = math.Sin(clock*idle.FinSpeed) * idle.FinSwing

	// Bubbles drift only during a run; pause and the title screen hold them.
	if dt > 0 && g.machine.Phase() == core.PhasePlaying {
		g.bubbles.Update(dt)
	}

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
func (g *Game) Config() config.FishConfig {
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
