package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from an interactive menu",
	Long: `Open the game picker. Finishing or leaving a run returns here.

Keys on the picker: up/down or j/k move, enter plays, tab opens the
scoreboard, q quits.

Examples:
  flappyfish menu
  flappyfish menu --fps 30 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, done, err := openLogger(true)
	if err != nil {
		return err
	}
	defer done()

	store := settings.OpenStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := settings.Runtime(terminalSize())
	for {
		picked, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = picked.Config

		switch {
		case picked.Quit, picked.GameID == "" && !picked.WantsScoreboard:
			return nil

		case picked.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "err", err)
			}
			if !back {
				return nil
			}

		default:
			if err := config.CheckFile(picked.GameID, flagConfig); err != nil {
				logger.Error("config rejected", "game", picked.GameID, "err", err)
				return err
			}
			run := cfg
			if run.Seed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			res, err := playGame(picked.GameID, run, store, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			logger.Debug("back at menu", "game", picked.GameID, "score", res.State.Score, "pressed_back", res.BackToMenu)
		}
	}
}
