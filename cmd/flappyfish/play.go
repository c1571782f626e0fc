package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fish"
	"github.com/vovakirdan/flappy-fish/internal/games/flappy"
	"github.com/vovakirdan/flappy-fish/internal/platform/tui"
	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up/W - Flap, start, play again
  Enter      - Start
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at the configured baseline, progresses over time
  normal - Start one step in
  hard   - Start three steps in
  fixed  - No progression, stays at the baseline

Examples:
  flappyfish play fish
  flappyfish play flappy --difficulty hard
  flappyfish play fish --config ./my-fish.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappyfish list' to see available games", gameID)
	}
	if err := config.CheckFile(gameID, flagConfig); err != nil {
		return err
	}

	logger, done, err := openLogger(true)
	if err != nil {
		return err
	}
	defer done()

	store := settings.OpenStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, err = playGame(gameID, settings.Runtime(terminalSize()), store, logger)
	return err
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// configureGame points a variant at its config file and preset before
// the game is created.
func configureGame(gameID string) {
	switch gameID {
	case fish.ID:
		fish.SetConfigPath(flagConfig)
		fish.SetDifficultyPreset(flagDifficulty)
	case flappy.ID:
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	}
}

// playGame runs one game until the player quits or backs out.
func playGame(gameID string, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (tui.Result, error) {
	configureGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		return tui.Result{}, err
	}
	cfg.HighScores = settings.HighScores(gameID, store, logger)

	logger.Info("starting game", "game", gameID, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "seed", cfg.Seed)
	res, err := tui.Run(game, tui.Options{
		Store:         store,
		Logger:        logger,
		ScreenshotDir: settings.ScreenshotDir(),
		Bell:          os.Stderr,
	}, cfg)
	if err != nil {
		return res, fmt.Errorf("running %s: %w", gameID, err)
	}
	return res, nil
}
