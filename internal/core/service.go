package core

import (
	"fmt"
	"sort"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/storage/config"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/storage/snapshot"
)

// ServiceConfig holds configuration for the core service
type ServiceConfig struct {
	ConfigDir    string // Directory for the exporter's own config file
	SnapshotFile string // Explicit backup file; overrides discovery
	VortexDir    string // Backup directory override; "" = Vortex default
}

// Service is the pipeline's entry point. It owns the loader (and with it the
// run's single cached snapshot) and hands each stage the list the previous
// one produced: extract -> merge -> disambiguate -> infer homepages -> sort.
type Service struct {
	config *config.Config
	loader *snapshot.Loader

	records []domain.ModRecord
}

// NewService creates a new core service instance
func NewService(cfg ServiceConfig) (*Service, error) {
	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var loader *snapshot.Loader
	switch {
	case cfg.SnapshotFile != "":
		loader = snapshot.NewFileLoader(cfg.SnapshotFile)
	case cfg.VortexDir != "":
		loader = snapshot.NewLoader(cfg.VortexDir)
	case appConfig.VortexPath != "":
		loader = snapshot.NewLoader(appConfig.VortexPath)
	default:
		dir, err := snapshot.DefaultDir()
		if err != nil {
			return nil, err
		}
		loader = snapshot.NewLoader(dir)
	}

	return &Service{
		config: appConfig,
		loader: loader,
	}, nil
}

// Config returns the loaded exporter configuration.
func (s *Service) Config() *config.Config {
	return s.config
}

// SnapshotFile returns the path of the state backup being read.
func (s *Service) SnapshotFile() (string, error) {
	return s.loader.File()
}

// Records runs the full normalization pipeline and returns the final list,
// sorted by game and deploy index. The result is computed once per run.
func (s *Service) Records() ([]domain.ModRecord, error) {
	if s.records != nil {
		return s.records, nil
	}

	snap, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	records, err := ExtractRecords(snap)
	if err != nil {
		return nil, err
	}

	records = MergeParts(records)
	records = Disambiguate(records)
	records = InferHomepages(records)

	sort.Slice(records, func(i, j int) bool {
		if records[i].Game != records[j].Game {
			return records[i].Game < records[j].Game
		}
		return records[i].DeployIndex < records[j].DeployIndex
	})

	s.records = records
	return s.records, nil
}

// GameRecords returns the normalized records for one game.
func (s *Service) GameRecords(gameID string) ([]domain.ModRecord, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	var out []domain.ModRecord
	for _, rec := range records {
		if rec.Game == gameID {
			out = append(out, rec)
		}
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}
	return out, nil
}

// Games summarizes the games present in the snapshot.
func (s *Service) Games() ([]domain.GameSummary, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	snap, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	byGame := make(map[string]*domain.GameSummary)
	var order []string
	for _, rec := range records {
		summary, ok := byGame[rec.Game]
		if !ok {
			summary = &domain.GameSummary{
				ID:      rec.Game,
				Profile: snap.Settings.Profiles.LastActiveProfile[rec.Game],
			}
			byGame[rec.Game] = summary
			order = append(order, rec.Game)
		}
		summary.ModCount++
		if rec.Enabled {
			summary.Enabled++
		}
	}

	out := make([]domain.GameSummary, 0, len(order))
	for _, game := range order {
		out = append(out, *byGame[game])
	}
	return out, nil
}
