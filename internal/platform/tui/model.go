package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

// Options wires the model to its surroundings. Every field is optional.
type Options struct {
	Store         *storage.Store // Run history; nil disables logging runs
	Logger        *log.Logger    // Nil discards
	ScreenshotDir string         // Ctrl+S target; empty disables screenshots
	Bell          io.Writer      // Receives the bell on collision; nil is silent
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game and resets the
// game to its title screen.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next
// tick so each one is seen by exactly one frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := gameAction(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Only between runs
		if m.gameState.Phase == core.PhaseStart || m.gameState.GameOver() {
			m.backToMenu = true
			m.quitting = true
			return m, tea.Quit
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.FrameTime())
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.handleEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvents reacts to what happened during a step.
func (m Model) handleEvents(result core.StepResult) {
	st := result.State
	for _, ev := range result.Events {
		switch ev {
		case core.EventCollision:
			if m.opts.Bell != nil {
				fmt.Fprint(m.opts.Bell, "\a") //nolint:errcheck // Bell is cosmetic
			}
			m.logger.Info("run finished", "game", m.game.ID(), "score", st.Score, "level", st.Level, "seconds", st.Elapsed)
			m.saveRun(st)

		case core.EventNewHighScore:
			m.logger.Info("new high score", "game", m.game.ID(), "score", st.HighScore)

		case core.EventLevelUp:
			m.logger.Debug("difficulty increased", "game", m.game.ID(), "level", st.Level)
		}
	}
}

// saveRun appends a finished run to the history. Empty runs are skipped.
func (m Model) saveRun(st core.GameState) {
	if m.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    st.Score,
		Level:    st.Level,
		Duration: st.Elapsed,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	path, err := writeScreenshot(m.game, m.screen, m.opts.ScreenshotDir, time.Now())
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func writeScreenshot(game registry.Game, screen *core.Screen, dir string, now time.Time) (string, error) {
	game.Render(screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Result is how a game session ended.
type Result struct {
	BackToMenu bool
	State      core.GameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (Result, error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{BackToMenu: fm.backToMenu, State: fm.gameState}, nil
}
