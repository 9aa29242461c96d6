package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	configDir    string
	snapshotFile string
	vortexDir    string
	gameID       string
	verbose      bool
	jsonOutput   bool
	noColor      bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "uvme",
		Level:  log.WarnLevel,
	})
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uvme",
	Short: "Universal Vortex Mod Exporter - report on your installed Vortex mods",
	Long: `uvme reads the latest full-state backup written by the Vortex mod manager
and exports a clean, deduplicated list of installed mods as a text table,
CSV, JSON, XLSX spreadsheet, HTML page, or SQLite database.

It never modifies Vortex's state or touches the mod files themselves.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/uvme)")
	rootCmd.PersistentFlags().StringVar(&snapshotFile, "snapshot", "", "explicit state backup file (default: newest backup in the Vortex directory)")
	rootCmd.PersistentFlags().StringVar(&vortexDir, "vortex-dir", "", "Vortex state-backup directory (default: <appdata>/Vortex/temp/state_backups_full)")
	rootCmd.PersistentFlags().StringVarP(&gameID, "game", "g", "", "game ID to restrict output to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format (list, games)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
// When --json is set and an error occurs, prints {"error":"..."} to stdout before exiting.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func main() {
	Execute()
}
