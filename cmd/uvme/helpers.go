package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/core"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// initService creates and initializes the core service
func initService() (*core.Service, error) {
	cfg, err := getServiceConfig()
	if err != nil {
		return nil, err
	}

	svc, err := core.NewService(cfg)
	if err != nil {
		return nil, err
	}

	if file, err := svc.SnapshotFile(); err == nil {
		logger.Debug("using state backup", "file", file)
	}

	return svc, nil
}

// getServiceConfig returns the service configuration with defaults.
// Returns an error if UserHomeDir fails and defaults are needed.
func getServiceConfig() (core.ServiceConfig, error) {
	cfg := core.ServiceConfig{
		ConfigDir:    configDir,
		SnapshotFile: snapshotFile,
		VortexDir:    vortexDir,
	}

	if cfg.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return core.ServiceConfig{}, fmt.Errorf("home directory: %w", err)
		}
		cfg.ConfigDir = filepath.Join(homeDir, ".config", "uvme")
	}

	return cfg, nil
}

// selectedRecords returns the normalized records, restricted to --game when set.
func selectedRecords(svc *core.Service) ([]domain.ModRecord, error) {
	if gameID != "" {
		return svc.GameRecords(gameID)
	}
	return svc.Records()
}

// truncate shortens s to max runes, appending "..." when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
