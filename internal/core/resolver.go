package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// archiveIDSuffix matches the id/version/timestamp tail Nexus Mods appends to
// generated archive filenames: at least two dash-separated digit groups
// followed by a 9+ digit timestamp.
// Example: "SomeMod-5124-3-09-1739477203" -> "SomeMod"
var archiveIDSuffix = regexp.MustCompile(`-\d+-\d+(?:-\d+)*-\d{9,}$`)

// archiveExtensions in the order they are tried. ".7zip" before ".7z" so the
// longer suffix wins.
var archiveExtensions = []string{".7zip", ".zip", ".rar", ".7z"}

// ResolveNames fills DisplayName, BaseName, and DisplayVersion on a record.
// It is total: every combination of present/absent candidates resolves to
// exactly one branch and the results are never empty.
//
// Name priority mirrors what Vortex itself shows: the logical file name when
// present, then the mod-page name, then a cleaned-up archive filename, then
// a type-tag placeholder, then a fixed "unnamed" placeholder.
func ResolveNames(rec *domain.ModRecord) {
	rec.DisplayName = displayName(rec)

	// BaseName is only a grouping key; prefer the page name since fragments
	// of one mod share it even when their file names differ.
	if rec.PageName != "" {
		rec.BaseName = rec.PageName
	} else {
		rec.BaseName = rec.DisplayName
	}

	switch {
	case rec.FileVersion != "":
		rec.DisplayVersion = rec.FileVersion
	case rec.ModVersion != "":
		rec.DisplayVersion = rec.ModVersion
	default:
		rec.DisplayVersion = domain.NoVersionLabel
	}
}

// displayName picks the first usable name candidate. An archive filename that
// is nothing but the packager tail cleans down to "", in which case the later
// candidates still apply.
func displayName(rec *domain.ModRecord) string {
	if rec.LogicalName != "" {
		return rec.LogicalName
	}
	if rec.PageName != "" {
		return rec.PageName
	}
	if rec.ArchiveName != "" {
		if name := CleanArchiveName(rec.ArchiveName); name != "" {
			return name
		}
	}
	if rec.Type != "" {
		return fmt.Sprintf("[Tool entry - %s]", rec.Type)
	}
	return domain.UnnamedLabel
}

// CleanArchiveName strips the archive extension and the packager-generated
// id/timestamp tail from an archive filename.
func CleanArchiveName(name string) string {
	name = strings.TrimSpace(name)
	lower := strings.ToLower(name)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	return archiveIDSuffix.ReplaceAllString(name, "")
}
