package core_test

import (
	"testing"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/core"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partRecord(game, homepage, logical string, index int, enabled bool) domain.ModRecord {
	rec := domain.ModRecord{
		Game:        game,
		ModKey:      logical,
		Homepage:    homepage,
		LogicalName: logical,
		DeployIndex: index,
		Enabled:     enabled,
		Parts:       1,
	}
	core.ResolveNames(&rec)
	return rec
}

func TestMergePartsCollapsesGroup(t *testing.T) {
	const page = "https://www.nexusmods.com/fallout4/mods/1/"
	records := []domain.ModRecord{
		partRecord("fallout4", page, "Foo Bar - Part 1", 4, false),
		partRecord("fallout4", page, "Foo Bar - Part 2", 7, true),
		partRecord("fallout4", page, "Foo Bar - Part 3", 5, false),
	}

	merged := core.MergeParts(records)
	require.Len(t, merged, 1)

	agg := merged[0]
	assert.Equal(t, "Foo Bar", agg.DisplayName)
	assert.Equal(t, "Foo Bar", agg.BaseName)
	assert.Equal(t, 4, agg.DeployIndex, "minimum index survives")
	assert.Equal(t, 3, agg.Parts)
	assert.True(t, agg.Enabled, "enabled is OR across the group")
	assert.True(t, agg.Merged())
	assert.Equal(t, page, agg.Homepage)
}

func TestMergePartsRequiresTwoMarkedMembers(t *testing.T) {
	const page = "https://www.nexusmods.com/fallout4/mods/2/"
	records := []domain.ModRecord{
		partRecord("fallout4", page, "Saga - Part 2", 0, true),
		partRecord("fallout4", page, "Saga Texture Pack", 1, true),
		partRecord("fallout4", page, "Saga Patch", 2, false),
	}

	merged := core.MergeParts(records)
	assert.Len(t, merged, 3, "a single part-numbered member must not trigger a merge")
}

func TestMergePartsSeparateGames(t *testing.T) {
	const page = "https://www.nexusmods.com/fallout4/mods/3/"
	records := []domain.ModRecord{
		partRecord("fallout4", page, "Big Mod Part 1", 0, true),
		partRecord("fallout4", page, "Big Mod Part 2", 1, true),
		partRecord("skyrimse", page, "Big Mod Part 1", 0, true),
	}

	merged := core.MergeParts(records)
	assert.Len(t, merged, 2, "groups are per (game, homepage)")
}

func TestMergePartsNoHomepagePassesThrough(t *testing.T) {
	records := []domain.ModRecord{
		partRecord("fallout4", "", "Loose Part 1", 0, true),
		partRecord("fallout4", "", "Loose Part 2", 1, true),
	}

	merged := core.MergeParts(records)
	assert.Len(t, merged, 2, "records without a shared download page never group")
}

func TestMergePartsParenthesizedMarker(t *testing.T) {
	const page = "https://www.nexusmods.com/skyrimse/mods/9/"
	records := []domain.ModRecord{
		partRecord("skyrimse", page, "Texture Overhaul (Part 01)", 2, true),
		partRecord("skyrimse", page, "Texture Overhaul (Part 02)", 3, false),
	}

	merged := core.MergeParts(records)
	require.Len(t, merged, 1)
	assert.Equal(t, "Texture Overhaul", merged[0].DisplayName)
	assert.Equal(t, 2, merged[0].Parts)
}

func TestMergePartsVersionSelection(t *testing.T) {
	const page = "https://www.nexusmods.com/fallout4/mods/4/"

	t.Run("mod version wins when present", func(t *testing.T) {
		a := partRecord("fallout4", page, "Mod Part 1", 0, true)
		b := partRecord("fallout4", page, "Mod Part 2", 1, true)
		b.ModVersion = "3.1"

		merged := core.MergeParts([]domain.ModRecord{a, b})
		require.Len(t, merged, 1)
		assert.Equal(t, "3.1", merged[0].DisplayVersion)
	})

	t.Run("most frequent file version otherwise", func(t *testing.T) {
		a := partRecord("fallout4", page, "Mod Part 1", 0, true)
		b := partRecord("fallout4", page, "Mod Part 2", 1, true)
		c := partRecord("fallout4", page, "Mod Part 3", 2, true)
		a.FileVersion = "1.0"
		b.FileVersion = "2.0"
		c.FileVersion = "2.0"

		merged := core.MergeParts([]domain.ModRecord{a, b, c})
		require.Len(t, merged, 1)
		assert.Equal(t, "2.0", merged[0].DisplayVersion)
	})

	t.Run("representative version as last resort", func(t *testing.T) {
		a := partRecord("fallout4", page, "Mod Part 1", 0, true)
		b := partRecord("fallout4", page, "Mod Part 2", 1, true)

		merged := core.MergeParts([]domain.ModRecord{a, b})
		require.Len(t, merged, 1)
		assert.Equal(t, domain.NoVersionLabel, merged[0].DisplayVersion)
	})
}

func TestMergePartsBaseNamePriority(t *testing.T) {
	const page = "https://www.nexusmods.com/fallout4/mods/5/"
	a := partRecord("fallout4", page, "fbp1", 0, true)
	a.PageName = "Full Mod Name - Part 1"
	a.BaseName = a.PageName
	b := partRecord("fallout4", page, "fbp2", 1, true)
	b.PageName = "Full Mod Name - Part 2"
	b.BaseName = b.PageName

	// Force marker detection through the page name; the logical names carry none.
	a.LogicalName = ""
	b.LogicalName = ""

	merged := core.MergeParts([]domain.ModRecord{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, "Full Mod Name", merged[0].DisplayName)
}

func TestMergePartsAggregatesArchiveSize(t *testing.T) {
	const page = "https://www.nexusmods.com/fallout4/mods/6/"
	a := partRecord("fallout4", page, "Mod Part 1", 0, true)
	b := partRecord("fallout4", page, "Mod Part 2", 1, true)
	a.ArchiveSize = 100
	b.ArchiveSize = 250
	a.ArchiveTime = 10
	b.ArchiveTime = 20

	merged := core.MergeParts([]domain.ModRecord{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, int64(350), merged[0].ArchiveSize)
	assert.Equal(t, int64(20), merged[0].ArchiveTime)
}
