package core_test

import (
	"testing"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/core"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferHomepages(t *testing.T) {
	records := []domain.ModRecord{
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "84015",
			Homepage:  "https://www.nexusmods.com/fallout4/mods/84015/",
		},
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "84015",
		},
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "99999",
		},
	}

	out := core.InferHomepages(records)
	require.Len(t, out, 3)

	assert.Equal(t, "https://www.nexusmods.com/fallout4/mods/84015/", out[1].Homepage,
		"shared catalog id propagates the sibling's exact URL")
	assert.Equal(t, "https://www.nexusmods.com/fallout4/mods/99999/", out[2].Homepage,
		"learned game slug synthesizes the page for id-only records")
}

func TestInferHomepagesNeverOverwrites(t *testing.T) {
	records := []domain.ModRecord{
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "1",
			Homepage:  "https://www.nexusmods.com/fallout4/mods/1/",
		},
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "1",
			Homepage:  "https://example.com/mirror/",
		},
	}

	out := core.InferHomepages(records)
	assert.Equal(t, "https://example.com/mirror/", out[1].Homepage)
}

func TestInferHomepagesUnknownCatalog(t *testing.T) {
	records := []domain.ModRecord{
		{
			Game:      "fallout4",
			Catalog:   "moddb",
			CatalogID: "5",
			Homepage:  "https://www.moddb.com/mods/5",
		},
		{
			Game:      "fallout4",
			Catalog:   "moddb",
			CatalogID: "6",
		},
	}

	out := core.InferHomepages(records)
	assert.Empty(t, out[1].Homepage, "unrecognized catalogs stay without a homepage")
}

func TestInferHomepagesNoSlugForGame(t *testing.T) {
	records := []domain.ModRecord{
		{
			Game:      "skyrimse",
			Catalog:   "nexus",
			CatalogID: "10",
			Homepage:  "https://www.nexusmods.com/skyrimse/mods/10/",
		},
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "11",
		},
	}

	out := core.InferHomepages(records)
	assert.Empty(t, out[1].Homepage, "a slug learned for one game never applies to another")
}

func TestInferHomepagesSlugFromBareHost(t *testing.T) {
	records := []domain.ModRecord{
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "20",
			Homepage:  "https://nexusmods.com/fallout4/mods/20/",
		},
		{
			Game:      "fallout4",
			Catalog:   "nexus",
			CatalogID: "21",
		},
	}

	out := core.InferHomepages(records)
	assert.Equal(t, "https://www.nexusmods.com/fallout4/mods/21/", out[1].Homepage,
		"synthesis always uses the canonical www host")
}
