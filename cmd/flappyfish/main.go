// flappyfish plays Flappy Fish and Flappy Bird in the terminal.
//
// Usage:
//
//	flappyfish list              - List available games
//	flappyfish play <game>       - Play a game
//	flappyfish menu              - Start menu to pick games interactively
//	flappyfish scores <game>     - Show high scores for a game
//
// Global flags (each also read from a FLAPPYFISH_* variable or .env):
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flappyfish/scores.db)
//	--data-dir <path>    - High score files and screenshots (default: ~/.flappyfish)
//	--highscore file|db  - Where the best score is kept
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/cli"
	"github.com/vovakirdan/flappy-fish/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/flappy-fish/internal/games/fish"
	_ "github.com/vovakirdan/flappy-fish/internal/games/flappy"
)

var settings cli.Settings

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyfish",
	Short: "Flappy Fish - flap through the reef in your terminal",
	Long: `Flappy Fish is a one-button arcade game: keep the fish swimming
through the gaps between coral columns. Flappy Bird, the classic 2D
variant, shares the same rules engine.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores

Examples:
  flappyfish list
  flappyfish play fish
  flappyfish menu
  flappyfish scores flappy`,
	SilenceUsage: true,
}

func init() {
	if err := cli.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	settings = cli.Defaults()
	cli.BindFlags(rootCmd, &settings)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogger builds the logger and routes config diagnostics to it.
// Full-screen commands pass fullscreen so nothing is printed over the game.
func openLogger(fullscreen bool) (*log.Logger, func(), error) {
	logger, closer, err := settings.Logger(os.Stderr, fullscreen)
	if err != nil {
		return nil, nil, err
	}
	config.SetLogger(logger)
	return logger, func() { closer.Close() }, nil
}
