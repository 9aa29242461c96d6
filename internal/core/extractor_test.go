package core_test

import (
	"testing"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/core"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/storage/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listEntry struct {
	key string
	mod *snapshot.Mod
}

func entry(key string, mod *snapshot.Mod) listEntry {
	return listEntry{key: key, mod: mod}
}

func modList(entries ...listEntry) *snapshot.ModList {
	list := &snapshot.ModList{Entries: make(map[string]*snapshot.Mod)}
	for _, e := range entries {
		list.Keys = append(list.Keys, e.key)
		list.Entries[e.key] = e.mod
	}
	return list
}

func TestExtractRecords(t *testing.T) {
	snap := &snapshot.Snapshot{
		Persistent: snapshot.Persistent{
			Mods: map[string]*snapshot.ModList{
				"fallout4": modList(
					entry("alpha", &snapshot.Mod{Attributes: snapshot.Attributes{
						LogicalFileName: "  Alpha Mod  ",
						ModID:           "100",
						Source:          "nexus",
						Homepage:        "https://www.nexusmods.com/fallout4/mods/100/",
					}}),
					entry("ghost", nil),
					entry("beta", &snapshot.Mod{Attributes: snapshot.Attributes{
						ModName: "Beta Mod",
						Version: "2.0",
					}}),
				),
			},
			Profiles: map[string]*snapshot.Profile{
				"prof1": {GameID: "fallout4", ModState: map[string]snapshot.ModState{
					"alpha": {Enabled: true},
					"beta":  {Enabled: false},
				}},
			},
		},
		Settings: snapshot.Settings{Profiles: snapshot.ProfileSettings{
			LastActiveProfile: map[string]string{"fallout4": "prof1"},
		}},
	}

	records, err := core.ExtractRecords(snap)
	require.NoError(t, err)
	require.Len(t, records, 2)

	alpha := records[0]
	assert.Equal(t, "fallout4", alpha.Game)
	assert.Equal(t, "alpha", alpha.ModKey)
	assert.Equal(t, 0, alpha.DeployIndex)
	assert.Equal(t, "Alpha Mod", alpha.LogicalName, "fields are trimmed")
	assert.Equal(t, "Alpha Mod", alpha.DisplayName)
	assert.True(t, alpha.Enabled)
	assert.Equal(t, "100", alpha.CatalogID)
	assert.Equal(t, 1, alpha.Parts)

	beta := records[1]
	assert.Equal(t, 2, beta.DeployIndex, "null entries advance the index")
	assert.Equal(t, "Beta Mod", beta.DisplayName)
	assert.False(t, beta.Enabled)
}

func TestExtractRecordsDeployIndexSequence(t *testing.T) {
	list := modList(
		entry("m0", &snapshot.Mod{}),
		entry("m1", &snapshot.Mod{}),
		entry("m2", &snapshot.Mod{}),
		entry("m3", &snapshot.Mod{}),
	)
	snap := &snapshot.Snapshot{Persistent: snapshot.Persistent{
		Mods: map[string]*snapshot.ModList{"skyrimse": list},
	}}

	records, err := core.ExtractRecords(snap)
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i, rec := range records {
		assert.Equal(t, i, rec.DeployIndex, "indices are strictly increasing from 0 with no gaps")
	}
}

func TestExtractRecordsNoProfile(t *testing.T) {
	snap := &snapshot.Snapshot{Persistent: snapshot.Persistent{
		Mods: map[string]*snapshot.ModList{
			"stardewvalley": modList(entry("m", &snapshot.Mod{Attributes: snapshot.Attributes{ModName: "M"}})),
		},
	}}

	records, err := core.ExtractRecords(snap)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Enabled, "missing profile state means disabled, not an error")
}

func TestExtractRecordsSchemaError(t *testing.T) {
	_, err := core.ExtractRecords(&snapshot.Snapshot{})
	assert.ErrorIs(t, err, domain.ErrSnapshotSchema)

	_, err = core.ExtractRecords(nil)
	assert.ErrorIs(t, err, domain.ErrSnapshotSchema)
}

func TestExtractRecordsJoinsDownloads(t *testing.T) {
	snap := &snapshot.Snapshot{Persistent: snapshot.Persistent{
		Mods: map[string]*snapshot.ModList{
			"fallout4": modList(entry("m", &snapshot.Mod{Attributes: snapshot.Attributes{
				FileName: "SomeMod-5124-3-09-1739477203.zip",
			}})),
		},
		Downloads: snapshot.Downloads{Files: map[string]*snapshot.DownloadFile{
			"dl1": {
				Game:      snapshot.GameList{"fallout4"},
				LocalPath: "downloads/SomeMod-5124-3-09-1739477203.zip",
				Size:      123456,
				FileTime:  snapshot.FlexTime(1739477203),
			},
		}},
	}}

	records, err := core.ExtractRecords(snap)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(123456), records[0].ArchiveSize)
	assert.Equal(t, int64(1739477203), records[0].ArchiveTime)
}

func TestExtractRecordsGamesSorted(t *testing.T) {
	snap := &snapshot.Snapshot{Persistent: snapshot.Persistent{
		Mods: map[string]*snapshot.ModList{
			"skyrimse": modList(entry("s", &snapshot.Mod{})),
			"fallout4": modList(entry("f", &snapshot.Mod{})),
		},
	}}

	records, err := core.ExtractRecords(snap)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "fallout4", records[0].Game)
	assert.Equal(t, "skyrimse", records[1].Game)
}
