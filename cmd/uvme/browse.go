package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the normalized mod list interactively",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	records, err := selectedRecords(svc)
	if err != nil {
		return err
	}

	return tui.Run(records)
}
