package core

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/storage/snapshot"
)

// ExtractRecords walks the snapshot's game -> mod mapping and produces one
// raw record per installed entry, with display names resolved on the way out.
// Games are visited in sorted order; entries within a game keep their stored
// order, which becomes the deploy index. Null entries are skipped but still
// advance the index so surviving records keep their positional meaning.
func ExtractRecords(snap *snapshot.Snapshot) ([]domain.ModRecord, error) {
	if snap == nil || snap.Persistent.Mods == nil {
		return nil, domain.ErrSnapshotSchema
	}

	archives := indexDownloads(snap)

	games := make([]string, 0, len(snap.Persistent.Mods))
	for game := range snap.Persistent.Mods {
		games = append(games, game)
	}
	sort.Strings(games)

	var records []domain.ModRecord
	for _, game := range games {
		list := snap.Persistent.Mods[game]
		if list == nil {
			continue
		}
		modState := snap.ActiveModState(game)

		for index, key := range list.Keys {
			mod := list.Entries[key]
			if mod == nil {
				continue
			}

			attrs := mod.Attributes
			rec := domain.ModRecord{
				Game:        game,
				ModKey:      key,
				CatalogID:   clean(string(attrs.ModID)),
				Catalog:     clean(attrs.Source),
				Homepage:    clean(attrs.Homepage),
				DeployIndex: index,
				LogicalName: clean(attrs.LogicalFileName),
				PageName:    clean(attrs.ModName),
				ArchiveName: clean(attrs.FileName),
				FileVersion: clean(attrs.Version),
				ModVersion:  clean(attrs.ModVersion),
				Type:        clean(mod.Type),
				Parts:       1,
			}
			if state, ok := modState[key]; ok {
				rec.Enabled = state.Enabled
			}
			if rec.ArchiveName != "" {
				if dl, ok := archives[strings.ToLower(rec.ArchiveName)]; ok {
					rec.ArchiveSize = dl.Size
					rec.ArchiveTime = int64(dl.FileTime)
				}
			}

			ResolveNames(&rec)
			records = append(records, rec)
		}
	}
	return records, nil
}

// indexDownloads maps archive base filenames (lower-cased) to their download
// entries so records can report archive size and time.
func indexDownloads(snap *snapshot.Snapshot) map[string]*snapshot.DownloadFile {
	index := make(map[string]*snapshot.DownloadFile)
	for _, file := range snap.Persistent.Downloads.Files {
		if file == nil || file.LocalPath == "" {
			continue
		}
		name := strings.ToLower(filepath.Base(file.LocalPath))
		if _, ok := index[name]; !ok {
			index[name] = file
		}
	}
	return index
}

// clean trims whitespace; blank strings count as absent everywhere downstream.
func clean(s string) string {
	return strings.TrimSpace(s)
}
