package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playable games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No games registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE")
		for _, g := range games {
			fmt.Fprintf(w, "%s\t%s\n", g.ID, g.Title)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println("\nStart one with 'flappyfish play <id>'.")
		return nil
	},
}
