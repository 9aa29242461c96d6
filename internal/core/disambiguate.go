package core

import (
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// Disambiguate re-expands records whose names collapsed to one label.
// Different mods sometimes ship the same logical file name (every patch hub
// seems to call its file "patch"), so after resolution several rows within a
// game can end up indistinguishable. When a (game, logical name) group spans
// more than one page name or more than one homepage it really is several
// distinct mods, and each member falls back to its own page name (or archive
// name) so the output stays tellable-apart.
//
// A group with one page name and one homepage is genuinely a single mod under
// one file name and is left alone. Row count never changes.
func Disambiguate(records []domain.ModRecord) []domain.ModRecord {
	type groupKey struct {
		game    string
		logical string
	}

	groups := make(map[groupKey][]int)
	for i := range records {
		if records[i].LogicalName == "" {
			continue
		}
		key := groupKey{records[i].Game, records[i].LogicalName}
		groups[key] = append(groups[key], i)
	}

	for _, members := range groups {
		if len(members) < 2 {
			continue
		}

		pages := make(map[string]bool)
		homes := make(map[string]bool)
		for _, i := range members {
			if records[i].PageName != "" {
				pages[records[i].PageName] = true
			}
			if records[i].Homepage != "" {
				homes[records[i].Homepage] = true
			}
		}
		if len(pages) < 2 && len(homes) < 2 {
			continue
		}

		for _, i := range members {
			switch {
			case records[i].PageName != "":
				records[i].DisplayName = records[i].PageName
				records[i].BaseName = records[i].PageName
			case records[i].ArchiveName != "":
				records[i].DisplayName = records[i].ArchiveName
				records[i].BaseName = records[i].ArchiveName
			}
		}
	}
	return records
}
