package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/export"
)

var (
	exportFormats []string
	exportOut     string
	exportName    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the normalized mod list to one or more formats",
	Long: fmt.Sprintf(`Export the normalized mod list.

Supported formats: %s.

Examples:
  uvme export
  uvme export --format csv,xlsx
  uvme export --game skyrimse --format html --out ~/reports`,
		strings.Join(export.Names(), ", ")),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", nil, "formats to write (default from config, usually csv)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default from config)")
	exportCmd.Flags().StringVar(&exportName, "name", "vortex-mods", "base filename for the exports")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	formats := exportFormats
	if len(formats) == 0 {
		formats = svc.Config().Formats
	}
	outDir := exportOut
	if outDir == "" {
		outDir = svc.Config().OutputDir
	}

	// Resolve every format up front so a typo fails before any file is written.
	resolved := make([]export.Format, 0, len(formats))
	for _, name := range formats {
		f, err := export.Lookup(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return err
		}
		resolved = append(resolved, f)
	}

	records, err := selectedRecords(svc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for i, f := range resolved {
		path := filepath.Join(outDir, exportName+f.Ext)
		logger.Debug("writing export", "format", formats[i], "path", path)
		if err := f.Write(records, path); err != nil {
			return fmt.Errorf("exporting %s: %w", formats[i], err)
		}
		fmt.Printf("Wrote %s (%d mods)\n", path, len(records))
	}

	return nil
}
