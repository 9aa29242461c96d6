// Package export renders a normalized mod list into the supported output
// formats. The pipeline hands it finished records; everything here is
// formatting only.
package export

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// WriteFunc renders records to path.
type WriteFunc func(records []domain.ModRecord, path string) error

// Format is one export target.
type Format struct {
	Ext   string // file extension including the dot
	Write WriteFunc
}

// Formats maps format names (as used by --format) to their writers.
var Formats = map[string]Format{
	"csv":    {Ext: ".csv", Write: WriteCSV},
	"json":   {Ext: ".json", Write: WriteJSON},
	"xlsx":   {Ext: ".xlsx", Write: WriteXLSX},
	"html":   {Ext: ".html", Write: WriteHTML},
	"sqlite": {Ext: ".db", Write: WriteSQLite},
}

// Lookup resolves a format name.
func Lookup(name string) (Format, error) {
	f, ok := Formats[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q (have %v)", domain.ErrUnknownFormat, name, Names())
	}
	return f, nil
}

// Names returns the supported format names, sorted.
func Names() []string {
	names := make([]string, 0, len(Formats))
	for name := range Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// header is the shared column set for the tabular formats.
func header() []string {
	return []string{
		"Game", "Name", "Version", "Enabled", "Parts",
		"Homepage", "Catalog", "Catalog ID", "Deploy Index",
		"Archive", "Archive Size", "Archive Time",
	}
}

// row renders one record in header() order.
func row(rec *domain.ModRecord) []string {
	enabled := "no"
	if rec.Enabled {
		enabled = "yes"
	}
	archiveTime := ""
	if rec.ArchiveTime > 0 {
		archiveTime = time.Unix(rec.ArchiveTime, 0).UTC().Format("2006-01-02 15:04:05")
	}
	archiveSize := ""
	if rec.ArchiveSize > 0 {
		archiveSize = strconv.FormatInt(rec.ArchiveSize, 10)
	}
	return []string{
		rec.Game,
		rec.DisplayName,
		rec.DisplayVersion,
		enabled,
		strconv.Itoa(rec.Parts),
		rec.Homepage,
		rec.Catalog,
		rec.CatalogID,
		strconv.Itoa(rec.DeployIndex),
		rec.ArchiveName,
		archiveSize,
		archiveTime,
	}
}
