package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 runs for the specified game.

Examples:
  flappyfish scores fish
  flappyfish scores flappy --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and best score for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'flappyfish list' to see available games", gameID)
	}
	title := info.Title

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	runs, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High scores - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Printf("No runs logged yet. Try 'flappyfish play %s'.\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tLEVEL\tTIME\tDATE")
	for i, r := range runs {
		played := time.Duration(r.Duration * float64(time.Second)).Round(time.Second)
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", i+1, r.Score, r.Level+1, played, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logged, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	kept, err := store.BestScore(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest: %d\n", max(logged, kept))
	return nil
}
