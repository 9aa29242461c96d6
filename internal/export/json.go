package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// JSONRecord is the machine-readable shape of one normalized record.
type JSONRecord struct {
	Game        string `json:"game"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Enabled     bool   `json:"enabled"`
	Parts       int    `json:"parts"`
	Homepage    string `json:"homepage,omitempty"`
	Catalog     string `json:"catalog,omitempty"`
	CatalogID   string `json:"catalog_id,omitempty"`
	DeployIndex int    `json:"deploy_index"`
	ModKey      string `json:"mod_key"`
	Archive     string `json:"archive,omitempty"`
	ArchiveSize int64  `json:"archive_size,omitempty"`
	ArchiveTime int64  `json:"archive_time,omitempty"`
}

// ToJSONRecords converts records to their export shape (also used by the
// list command's --json output).
func ToJSONRecords(records []domain.ModRecord) []JSONRecord {
	out := make([]JSONRecord, len(records))
	for i, rec := range records {
		out[i] = JSONRecord{
			Game:        rec.Game,
			Name:        rec.DisplayName,
			Version:     rec.DisplayVersion,
			Enabled:     rec.Enabled,
			Parts:       rec.Parts,
			Homepage:    rec.Homepage,
			Catalog:     rec.Catalog,
			CatalogID:   rec.CatalogID,
			DeployIndex: rec.DeployIndex,
			ModKey:      rec.ModKey,
			Archive:     rec.ArchiveName,
			ArchiveSize: rec.ArchiveSize,
			ArchiveTime: rec.ArchiveTime,
		}
	}
	return out
}

// WriteJSON writes the mod list as a JSON array.
func WriteJSON(records []domain.ModRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToJSONRecords(records)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return f.Close()
}
