package domain

// Placeholder labels used when Vortex carries no usable name or version.
const (
	UnnamedLabel   = "[Unnamed entry - Vortex has no mod name]"
	NoVersionLabel = "[no version in Vortex]"
)

// ModRecord is one installed-mod entry from a Vortex state backup, carried
// through the whole normalization pipeline. The extractor fills the raw
// fields, the resolver fills the display fields, and the merge/disambiguate/
// homepage passes rewrite them in place.
type ModRecord struct {
	Game        string // Vortex game id, e.g. "fallout4"
	ModKey      string // Vortex's internal mod identifier (unique per game only)
	CatalogID   string // numeric mod-page id at the source catalog, "" if unknown
	Catalog     string // source catalog name, e.g. "nexus"
	Homepage    string // mod download-page URL, "" if unknown
	DeployIndex int    // ordinal position within the game's mod mapping
	Enabled     bool   // from the active profile's mod-state map

	// Candidate fields as stored by Vortex (trimmed, "" = absent).
	LogicalName string // attributes.logicalFileName
	PageName    string // attributes.modName
	ArchiveName string // attributes.fileName
	FileVersion string // attributes.version
	ModVersion  string // attributes.modVersion (catalog-reported)
	Type        string // mod type tag, e.g. "collection"

	// Resolved display fields.
	DisplayName    string // never empty after resolution
	BaseName       string // grouping key, prefers the mod-page name
	DisplayVersion string // never empty after resolution

	// Parts is the number of installed entries this record represents.
	// 1 for ordinary records, >1 when the multi-part merger collapsed a group.
	Parts int

	// Archive metadata joined from the snapshot's downloads section.
	ArchiveSize int64 // bytes, 0 if the archive is not in the downloads list
	ArchiveTime int64 // unix seconds, 0 if unknown
}

// Merged reports whether this record aggregates a multi-part group.
func (m *ModRecord) Merged() bool {
	return m.Parts > 1
}

// GameSummary describes one game present in a state backup.
type GameSummary struct {
	ID       string
	Profile  string // active profile id, "" if none mapped
	ModCount int
	Enabled  int
}
