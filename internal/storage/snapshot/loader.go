package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// DefaultDir returns the directory where Vortex writes its full-state
// backups, relative to the user's config root (%AppData% on Windows).
func DefaultDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(root, "Vortex", "temp", "state_backups_full"), nil
}

// Loader finds and decodes one state backup per run. The parsed snapshot is
// cached: every pipeline stage reads the same document, and the file is never
// re-read mid-run.
type Loader struct {
	dir  string // discovery directory (newest *.json wins)
	path string // explicit file; bypasses discovery when set

	file string
	snap *Snapshot
}

// NewLoader creates a Loader that picks the most recently modified .json
// file in dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// NewFileLoader creates a Loader bound to an explicit backup file.
func NewFileLoader(path string) *Loader {
	return &Loader{path: path}
}

// File returns the path of the backup that was (or will be) loaded.
func (l *Loader) File() (string, error) {
	if l.file != "" {
		return l.file, nil
	}
	if l.path != "" {
		l.file = l.path
		return l.file, nil
	}
	newest, err := newestBackup(l.dir)
	if err != nil {
		return "", err
	}
	l.file = newest
	return l.file, nil
}

// Load reads, repairs, and decodes the snapshot. Subsequent calls return the
// cached document.
func (l *Loader) Load() (*Snapshot, error) {
	if l.snap != nil {
		return l.snap, nil
	}

	file, err := l.File()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, file)
		}
		return nil, fmt.Errorf("reading state backup: %w", err)
	}

	// The repair pass always runs: Go's decoder does not reject duplicate
	// keys, it keeps the last one and silently drops the rest. Repairing
	// first preserves every record. On clean input the pass is a no-op.
	data = RepairDuplicateKeys(data)

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotParse, err)
	}

	l.snap = &snap
	return l.snap, nil
}

// newestBackup returns the most recently modified .json file in dir.
func newestBackup(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s does not exist", domain.ErrSnapshotNotFound, dir)
		}
		return "", fmt.Errorf("reading backup dir: %w", err)
	}

	var newest string
	var newestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = entry.Name()
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("%w: no .json files in %s", domain.ErrSnapshotNotFound, dir)
	}
	return filepath.Join(dir, newest), nil
}
