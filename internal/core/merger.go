package core

import (
	"regexp"
	"strings"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// partMarker matches "part N" markers in mod names, either parenthesized
// ("(Part 2)") or bare ("Part 2"), case-insensitive, leading zeros allowed.
var partMarker = regexp.MustCompile(`(?i)\(\s*part\s*(\d+)\s*\)|\bpart\s+(\d+)\b`)

// partSeparators are trimmed off the end of a candidate base name: spaces,
// dashes, en/em dashes, underscores.
const partSeparators = " \t-–—_"

// MergeParts collapses groups of records that are fragments of one logical
// mod. Nexus splits oversized mods into "Part 1..N" downloads and Vortex
// installs each as a separate package; sharing a download page plus carrying
// part markers identifies them. A group needs at least two part-marked
// members to merge, so a mod legitimately named "Part 2 of the saga" with no
// siblings passes through untouched.
//
// Output ordering is not meaningful; the service applies the final sort.
func MergeParts(records []domain.ModRecord) []domain.ModRecord {
	type groupKey struct {
		game     string
		homepage string
	}

	var order []groupKey
	groups := make(map[groupKey][]domain.ModRecord)
	var passthrough []domain.ModRecord

	for _, rec := range records {
		if rec.Homepage == "" {
			// No shared download page, nothing to group on.
			passthrough = append(passthrough, rec)
			continue
		}
		key := groupKey{rec.Game, rec.Homepage}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	out := passthrough
	for _, key := range order {
		group := groups[key]
		marked := 0
		for i := range group {
			if hasPartMarker(&group[i]) {
				marked++
			}
		}
		if marked < 2 {
			out = append(out, group...)
			continue
		}
		base := sharedBaseName(group)
		if base == "" {
			out = append(out, group...)
			continue
		}
		out = append(out, aggregate(group, base))
	}
	return out
}

// hasPartMarker scans the record's name-like fields for a part marker. The
// first matching field decides.
func hasPartMarker(rec *domain.ModRecord) bool {
	for _, field := range []string{rec.LogicalName, rec.PageName, rec.ArchiveName, rec.DisplayName, rec.ModKey} {
		if field != "" && partMarker.MatchString(field) {
			return true
		}
	}
	return false
}

// sharedBaseName derives the group's common name: the prefix before a part
// marker from the highest-priority field that yields one longer than two
// characters after separator trimming, else the longest existing name across
// the group, else "" (group stays unmerged).
func sharedBaseName(group []domain.ModRecord) string {
	fields := func(rec *domain.ModRecord) []string {
		return []string{rec.PageName, rec.LogicalName, rec.ArchiveName, rec.BaseName, rec.DisplayName}
	}

	for fieldIdx := 0; fieldIdx < 5; fieldIdx++ {
		for i := range group {
			value := fields(&group[i])[fieldIdx]
			if value == "" {
				continue
			}
			loc := partMarker.FindStringIndex(value)
			if loc == nil {
				continue
			}
			prefix := strings.TrimRight(value[:loc[0]], partSeparators)
			if len(prefix) > 2 {
				return prefix
			}
		}
	}

	// No marker-derived prefix qualified; fall back to the longest name any
	// member carries.
	longest := ""
	for i := range group {
		for _, value := range []string{group[i].BaseName, group[i].PageName, group[i].ArchiveName, group[i].DisplayName} {
			if len(value) > len(longest) {
				longest = value
			}
		}
	}
	return longest
}

// aggregate folds a part group into one record representing all members.
func aggregate(group []domain.ModRecord, base string) domain.ModRecord {
	rep := 0
	for i := range group {
		if group[i].DeployIndex < group[rep].DeployIndex {
			rep = i
		}
	}

	agg := group[rep]
	agg.DisplayName = base
	agg.BaseName = base
	agg.Parts = len(group)
	agg.DisplayVersion = groupVersion(group, rep)

	agg.Enabled = false
	agg.ArchiveSize = 0
	for i := range group {
		agg.Enabled = agg.Enabled || group[i].Enabled
		agg.ArchiveSize += group[i].ArchiveSize
		if group[i].ArchiveTime > agg.ArchiveTime {
			agg.ArchiveTime = group[i].ArchiveTime
		}
		if agg.Homepage == "" && group[i].Homepage != "" {
			agg.Homepage = group[i].Homepage
		}
		if agg.CatalogID == "" && group[i].CatalogID != "" {
			agg.CatalogID = group[i].CatalogID
		}
		if agg.Catalog == "" && group[i].Catalog != "" {
			agg.Catalog = group[i].Catalog
		}
	}
	return agg
}

// groupVersion picks the aggregate's version: the catalog-reported mod
// version if any member carries one (parts of one download share it), else
// the most frequent per-file version, else the representative's resolved
// version.
func groupVersion(group []domain.ModRecord, rep int) string {
	for i := range group {
		if group[i].ModVersion != "" {
			return group[i].ModVersion
		}
	}

	counts := make(map[string]int)
	best := ""
	for i := range group {
		v := group[i].FileVersion
		if v == "" {
			continue
		}
		counts[v]++
		if best == "" || counts[v] > counts[best] {
			best = v
		}
	}
	if best != "" {
		return best
	}
	return group[rep].DisplayVersion
}
