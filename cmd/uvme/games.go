package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List games found in the state backup",
	RunE:  runGames,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}

func runGames(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	games, err := svc.Games()
	if err != nil {
		return err
	}

	if jsonOutput {
		type gameJSON struct {
			ID      string `json:"id"`
			Profile string `json:"profile,omitempty"`
			Mods    int    `json:"mods"`
			Enabled int    `json:"enabled"`
		}
		out := make([]gameJSON, len(games))
		for i, g := range games {
			out[i] = gameJSON{ID: g.ID, Profile: g.Profile, Mods: g.ModCount, Enabled: g.Enabled}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(games) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tPROFILE\tMODS\tENABLED")
	fmt.Fprintln(w, "----\t-------\t----\t-------")
	for _, g := range games {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", g.ID, g.Profile, g.ModCount, g.Enabled)
	}
	w.Flush()

	return nil
}
