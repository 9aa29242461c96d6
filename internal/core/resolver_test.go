package core_test

import (
	"testing"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/core"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveNames(t *testing.T) {
	tests := []struct {
		name        string
		rec         domain.ModRecord
		wantName    string
		wantBase    string
		wantVersion string
	}{
		{
			name: "logical file name wins",
			rec: domain.ModRecord{
				LogicalName: "SkyUI",
				PageName:    "SkyUI SE",
				ArchiveName: "SkyUI_5_2_SE-12604-5-2SE.zip",
				FileVersion: "5.2SE",
			},
			wantName:    "SkyUI",
			wantBase:    "SkyUI SE",
			wantVersion: "5.2SE",
		},
		{
			name: "page name when no logical name",
			rec: domain.ModRecord{
				PageName:   "Unofficial Skyrim Patch",
				ModVersion: "4.3.0a",
			},
			wantName:    "Unofficial Skyrim Patch",
			wantBase:    "Unofficial Skyrim Patch",
			wantVersion: "4.3.0a",
		},
		{
			name: "archive name cleaned",
			rec: domain.ModRecord{
				ArchiveName: "SomeMod-5124-3-09-1739477203.zip",
			},
			wantName:    "SomeMod",
			wantBase:    "SomeMod",
			wantVersion: domain.NoVersionLabel,
		},
		{
			name: "archive name that is all packager tail",
			rec: domain.ModRecord{
				ArchiveName: "-5124-3-09-1739477203.zip",
			},
			wantName:    domain.UnnamedLabel,
			wantBase:    domain.UnnamedLabel,
			wantVersion: domain.NoVersionLabel,
		},
		{
			name: "all-tail archive falls back to type tag",
			rec: domain.ModRecord{
				ArchiveName: "-5124-3-09-1739477203.zip",
				Type:        "collection",
			},
			wantName:    "[Tool entry - collection]",
			wantBase:    "[Tool entry - collection]",
			wantVersion: domain.NoVersionLabel,
		},
		{
			name: "type tag placeholder",
			rec: domain.ModRecord{
				Type: "collection",
			},
			wantName:    "[Tool entry - collection]",
			wantBase:    "[Tool entry - collection]",
			wantVersion: domain.NoVersionLabel,
		},
		{
			name:        "nothing usable",
			rec:         domain.ModRecord{},
			wantName:    domain.UnnamedLabel,
			wantBase:    domain.UnnamedLabel,
			wantVersion: domain.NoVersionLabel,
		},
		{
			name: "file version preferred over mod version",
			rec: domain.ModRecord{
				LogicalName: "Mod",
				FileVersion: "1.0",
				ModVersion:  "2.0",
			},
			wantName:    "Mod",
			wantBase:    "Mod",
			wantVersion: "1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			core.ResolveNames(&rec)
			assert.Equal(t, tt.wantName, rec.DisplayName)
			assert.Equal(t, tt.wantBase, rec.BaseName)
			assert.Equal(t, tt.wantVersion, rec.DisplayVersion)
			assert.NotEmpty(t, rec.DisplayName)
			assert.NotEmpty(t, rec.DisplayVersion)
		})
	}
}

func TestCleanArchiveName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"id and timestamp tail", "SomeMod-5124-3-09-1739477203.zip", "SomeMod"},
		{"7z extension", "SKSE64-30379-2-2-6-1703618069.7z", "SKSE64"},
		{"rar extension", "TestMod-88888-2-1-1650000000.rar", "TestMod"},
		{"7zip extension", "Archive-1-2-1650000000.7zip", "Archive"},
		{"extension only", "plain-mod.zip", "plain-mod"},
		{"no extension no tail", "loose-file", "loose-file"},
		{"short timestamp kept", "Mod-1-2-12345.zip", "Mod-1-2-12345"},
		{"uppercase extension", "Mod-10-2-0-1650000000.ZIP", "Mod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.CleanArchiveName(tt.in))
		})
	}
}
