package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/export"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/storage/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to disk",
	Long: `Write the effective configuration to <config-dir>/config.yaml so it
can be edited. Existing settings are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it.

Keys:
  vortex_path  Vortex state-backup directory override
  output_dir   directory exports are written to
  formats      comma-separated default export formats`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	svcCfg, err := getServiceConfig()
	if err != nil {
		return err
	}

	cfg, err := config.Load(svcCfg.ConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	cmd.Printf("# %s\n", filepath.Join(svcCfg.ConfigDir, "config.yaml"))
	cmd.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	svcCfg, err := getServiceConfig()
	if err != nil {
		return err
	}

	cfg, err := config.Load(svcCfg.ConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Save(svcCfg.ConfigDir); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Wrote %s\n", filepath.Join(svcCfg.ConfigDir, "config.yaml"))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svcCfg, err := getServiceConfig()
	if err != nil {
		return err
	}

	cfg, err := config.Load(svcCfg.ConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "vortex_path":
		if value != "" {
			if _, err := os.Stat(value); err != nil {
				return fmt.Errorf("vortex_path: %w", err)
			}
		}
		cfg.VortexPath = value
	case "output_dir":
		cfg.OutputDir = value
	case "formats":
		formats := strings.Split(value, ",")
		for i, f := range formats {
			formats[i] = strings.TrimSpace(f)
			if _, err := export.Lookup(formats[i]); err != nil {
				return err
			}
		}
		cfg.Formats = formats
	default:
		return fmt.Errorf("unknown config key: %q (valid: vortex_path, output_dir, formats)", key)
	}

	if err := cfg.Save(svcCfg.ConfigDir); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
