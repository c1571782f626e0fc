// Package gui runs a game in a desktop window using Ebitengine.
// Frames are built by the scene package and replayed here with vector
// shapes and the debug font; sound effects come from sfx.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fish"
	"github.com/vovakirdan/flappy-fish/internal/games/flappy"
	"github.com/vovakirdan/flappy-fish/internal/platform/gui/scene"
	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

// maxFrameTime caps dt after a stall, e.g. while the window is dragged.
const maxFrameTime = 0.25

// Options wires the window to its surroundings. Every field is optional.
type Options struct {
	Store  *storage.Store // Run history; nil disables logging runs
	Logger *log.Logger    // Nil discards
	Mute   bool
}

// App implements ebiten.Game around a registry game.
type App struct {
	game   registry.Game
	build  func(w, h int) scene.Scene
	opts   Options
	logger *log.Logger
	sounds *sounds

	tick     float64
	last     time.Time
	w, h     int
	state    core.GameState
	quitting bool
}

// New prepares a window app and resets the game to its title screen.
func New(game registry.Game, opts Options, cfg core.RuntimeConfig) (*App, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		game:   game,
		opts:   opts,
		logger: logger,
		tick:   cfg.FrameTime(),
	}

	switch g := game.(type) {
	case *fish.Game:
		a.build = func(w, h int) scene.Scene {
			return scene.Fish(g.Snapshot(), g.Config().World, w, h)
		}
	case *flappy.Game:
		a.build = func(w, h int) scene.Scene {
			return scene.Flappy(g.Snapshot(), w, h)
		}
	default:
		return nil, fmt.Errorf("gui: no window renderer for %q", game.ID())
	}

	game.Reset(cfg)
	a.state = game.State()
	if !opts.Mute {
		a.sounds = newSounds()
	}
	return a, nil
}

// Update advances the game by the wall time since the previous frame.
func (a *App) Update() error {
	now := time.Now()
	dt := a.tick
	if !a.last.IsZero() {
		dt = core.ClampF(now.Sub(a.last).Seconds(), 0, maxFrameTime)
	}
	a.last = now

	in := readInput()
	if in.Has(core.ActionQuit) {
		a.quitting = true
		return ebiten.Termination
	}
	if !ebiten.IsFocused() && a.state.Phase == core.PhasePlaying {
		in.Set(core.ActionPause)
	}

	result := a.game.Step(in, dt)
	a.state = result.State
	a.handleEvents(result)
	return nil
}

// readInput collects the actions pressed this frame.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
			in.Set(core.ActionJump)
		case ebiten.KeyEnter:
			in.Set(core.ActionConfirm)
		case ebiten.KeyP, ebiten.KeyEscape:
			in.Set(core.ActionPause)
		case ebiten.KeyR:
			in.Set(core.ActionRestart)
		case ebiten.KeyQ:
			in.Set(core.ActionQuit)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	return in
}

func (a *App) handleEvents(result core.StepResult) {
	st := result.State
	for _, ev := range result.Events {
		switch ev {
		case core.EventFlap:
			a.sounds.play(soundFlap)
		case core.EventScored:
			a.sounds.play(soundScore)
		case core.EventCollision:
			a.sounds.play(soundHit)
			a.logger.Info("run finished", "game", a.game.ID(), "score", st.Score, "level", st.Level, "seconds", st.Elapsed)
			a.saveRun(st)
		case core.EventNewHighScore:
			a.logger.Info("new high score", "game", a.game.ID(), "score", st.HighScore)
		case core.EventLevelUp:
			a.logger.Debug("difficulty increased", "game", a.game.ID(), "level", st.Level)
		}
	}
}

// saveRun appends a finished run to the history. Empty runs are skipped.
func (a *App) saveRun(st core.GameState) {
	if a.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := a.opts.Store.SaveRun(storage.Run{
		GameID:   a.game.ID(),
		Score:    st.Score,
		Level:    st.Level,
		Duration: st.Elapsed,
	})
	if err != nil {
		a.logger.Warn("cannot save run", "game", a.game.ID(), "err", err)
	}
}

// Draw replays the frame's display list onto the window.
func (a *App) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s := a.build(b.Dx(), b.Dy())

	screen.Fill(s.Background)
	for _, sh := range s.Shapes {
		switch sh.Kind {
		case scene.KindRect:
			vector.DrawFilledRect(screen, sh.X, sh.Y, sh.W, sh.H, sh.Color, false)
		case scene.KindCircle:
			vector.DrawFilledCircle(screen, sh.X, sh.Y, sh.R, sh.Color, true)
		case scene.KindLine:
			vector.StrokeLine(screen, sh.X, sh.Y, sh.X2, sh.Y2, sh.W, sh.Color, true)
		case scene.KindText:
			ebitenutil.DebugPrintAt(screen, sh.Text, int(sh.X), int(sh.Y))
		}
	}
}

// Layout follows the window size one to one and keeps the game's
// playfield in step with it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.w || outsideHeight != a.h {
		a.w, a.h = outsideWidth, outsideHeight
		a.game.Resize(scene.Cells(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// State returns the game state after the last frame.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens a window sized to cfg's playfield and blocks until it closes.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (core.GameState, error) {
	app, err := New(game, opts, cfg)
	if err != nil {
		return core.GameState{}, err
	}

	ebiten.SetWindowSize(cfg.ScreenW*scene.CellSize, cfg.ScreenH*scene.CellSize)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return app.state, fmt.Errorf("gui: %w", err)
	}
	return app.state, nil
}
