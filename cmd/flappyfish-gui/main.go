// flappyfish-gui plays Flappy Fish or Flappy Bird in a desktop window.
//
// Usage:
//
//	flappyfish-gui [--game fish|flappy] [--difficulty preset] [--mute]
//
// The global flags match the terminal binary and read the same
// FLAPPYFISH_* variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/cli"
	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/games/fish"
	"github.com/vovakirdan/flappy-fish/internal/games/flappy"
	"github.com/vovakirdan/flappy-fish/internal/platform/gui"
	"github.com/vovakirdan/flappy-fish/internal/registry"
)

// Initial window size in playfield cells, 960x540 pixels.
const (
	windowCols = 80
	windowRows = 45
)

var (
	settings       cli.Settings
	flagGame       string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyfish-gui",
	Short: "Flappy Fish in a window",
	Long: `Open a window and play.

Controls:
  Space/Up/W/Click - Flap, start, play again
  Enter            - Start
  P/Esc            - Pause
  R                - Restart
  Q                - Quit

Examples:
  flappyfish-gui
  flappyfish-gui --game flappy --difficulty hard`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	if err := cli.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	settings = cli.Defaults()
	cli.BindFlags(rootCmd, &settings)

	rootCmd.Flags().StringVar(&flagGame, "game", fish.ID, "Game to play: fish or flappy")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func run(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagGame) {
		return fmt.Errorf("unknown game %q", flagGame)
	}
	if err := config.CheckFile(flagGame, flagConfig); err != nil {
		return err
	}

	logger, closer, err := settings.Logger(os.Stderr, false)
	if err != nil {
		return err
	}
	defer closer.Close()
	config.SetLogger(logger)

	switch flagGame {
	case fish.ID:
		fish.SetConfigPath(flagConfig)
		fish.SetDifficultyPreset(flagDifficulty)
	case flappy.ID:
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(flagGame)
	if err != nil {
		return err
	}

	store := settings.OpenStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := settings.Runtime(windowCols, windowRows)
	cfg.HighScores = settings.HighScores(flagGame, store, logger)

	state, err := gui.Run(game, gui.Options{Store: store, Logger: logger, Mute: flagMute}, cfg)
	if err != nil {
		return err
	}
	logger.Info("window closed", "game", flagGame, "score", state.Score, "best", state.HighScore)
	return nil
}
