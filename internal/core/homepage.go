package core

import (
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/catalog"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// InferHomepages fills missing download-page URLs. It only ever adds a
// value, never replaces one, and works purely from URLs already present in
// the run: first by copying a sibling's URL when two records share a numeric
// catalog id, then by learning each game's URL slug from any canonical URL
// and synthesizing pages for id-only records. Records from unrecognized
// catalogs, or from games with no learnable slug, simply stay without a
// homepage.
func InferHomepages(records []domain.ModRecord) []domain.ModRecord {
	propagateByID(records)
	synthesizeFromSlugs(records)
	return records
}

// propagateByID copies a known homepage across records sharing the same
// (game, numeric catalog id).
func propagateByID(records []domain.ModRecord) {
	type groupKey struct {
		game string
		id   string
	}

	known := make(map[groupKey]string)
	for i := range records {
		if records[i].CatalogID == "" || records[i].Homepage == "" {
			continue
		}
		key := groupKey{records[i].Game, records[i].CatalogID}
		if _, ok := known[key]; !ok {
			known[key] = records[i].Homepage
		}
	}

	for i := range records {
		if records[i].Homepage != "" || records[i].CatalogID == "" {
			continue
		}
		if url, ok := known[groupKey{records[i].Game, records[i].CatalogID}]; ok {
			records[i].Homepage = url
		}
	}
}

// synthesizeFromSlugs learns each (catalog, game) -> slug mapping from the
// first canonical URL observed, then builds URLs for records that carry a
// numeric id but no homepage.
func synthesizeFromSlugs(records []domain.ModRecord) {
	type slugKey struct {
		catalog string
		game    string
	}

	slugs := make(map[slugKey]string)
	for i := range records {
		cat, ok := catalog.Lookup(records[i].Catalog)
		if !ok || records[i].Homepage == "" {
			continue
		}
		slug, _, ok := cat.ParseModURL(records[i].Homepage)
		if !ok {
			continue
		}
		key := slugKey{cat.ID, records[i].Game}
		if _, seen := slugs[key]; !seen {
			slugs[key] = slug
		}
	}

	for i := range records {
		if records[i].Homepage != "" || records[i].CatalogID == "" {
			continue
		}
		cat, ok := catalog.Lookup(records[i].Catalog)
		if !ok {
			continue
		}
		slug, ok := slugs[slugKey{cat.ID, records[i].Game}]
		if !ok {
			continue
		}
		records[i].Homepage = cat.ModURL(slug, records[i].CatalogID)
	}
}
