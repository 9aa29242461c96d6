package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/export"
)

var listEnabledOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List normalized mods from the latest Vortex state backup",
	Long: `List the normalized mod records read from the latest Vortex state backup.

Examples:
  uvme list
  uvme list --game fallout4
  uvme list --game fallout4 --enabled-only --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listEnabledOnly, "enabled-only", false, "only show enabled mods")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	records, err := selectedRecords(svc)
	if err != nil {
		return err
	}

	if listEnabledOnly {
		filtered := records[:0:0]
		for _, rec := range records {
			if rec.Enabled {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(export.ToJSONRecords(records))
	}

	if len(records) == 0 {
		fmt.Println("No mods found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tNAME\tVERSION\tENABLED\tPARTS\tHOMEPAGE")
	fmt.Fprintln(w, "----\t----\t-------\t-------\t-----\t--------")

	for _, rec := range records {
		enabled := colorRed("no")
		if rec.Enabled {
			enabled = colorGreen("yes")
		}
		parts := ""
		if rec.Merged() {
			parts = fmt.Sprintf("%d", rec.Parts)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Game,
			truncate(rec.DisplayName, 50),
			truncate(rec.DisplayVersion, 20),
			enabled,
			parts,
			rec.Homepage,
		)
	}
	w.Flush()

	if verbose {
		fmt.Printf("\nTotal: %d mod(s)\n", len(records))
	}

	return nil
}

const (
	ansiReset = "\033[0m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
)

// colorGreen returns s with green ANSI when color is enabled, otherwise s.
func colorGreen(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiGreen + s + ansiReset
}

// colorRed returns s with red ANSI when color is enabled, otherwise s.
func colorRed(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiRed + s + ansiReset
}
