package export

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

const modsSchema = `
CREATE TABLE mods (
	game         TEXT NOT NULL,
	mod_key      TEXT NOT NULL,
	name         TEXT NOT NULL,
	version      TEXT NOT NULL,
	enabled      INTEGER NOT NULL,
	parts        INTEGER NOT NULL,
	homepage     TEXT,
	catalog      TEXT,
	catalog_id   TEXT,
	deploy_index INTEGER NOT NULL,
	archive      TEXT,
	archive_size INTEGER,
	archive_time INTEGER,
	PRIMARY KEY (game, mod_key)
);
CREATE INDEX idx_mods_game ON mods(game);
`

// WriteSQLite writes the mod list into a fresh SQLite database. This is an
// export target like the others: the file is recreated on every run and the
// exporter never reads it back.
func WriteSQLite(records []domain.ModRecord, path string) (err error) {
	// Recreate so stale rows from a previous export never linger.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing previous export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing database: %w", cerr)
		}
	}()

	if _, err := db.Exec(modsSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO mods
		(game, mod_key, name, version, enabled, parts, homepage, catalog, catalog_id, deploy_index, archive, archive_size, archive_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		rec := &records[i]
		enabled := 0
		if rec.Enabled {
			enabled = 1
		}
		if _, err := stmt.Exec(
			rec.Game, rec.ModKey, rec.DisplayName, rec.DisplayVersion,
			enabled, rec.Parts, nullable(rec.Homepage), nullable(rec.Catalog),
			nullable(rec.CatalogID), rec.DeployIndex, nullable(rec.ArchiveName),
			rec.ArchiveSize, rec.ArchiveTime,
		); err != nil {
			return fmt.Errorf("inserting %s/%s: %w", rec.Game, rec.ModKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// nullable maps "" to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
