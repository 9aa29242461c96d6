// Package catalog describes mod-hosting sites whose mod-page URLs follow a
// fixed <domain>/<game-slug>/mods/<numeric-id> pattern. The homepage
// inference pass uses it to learn game slugs from known URLs and to
// synthesize URLs for records that only carry a numeric id. Everything here
// is pattern work on already-known data; no catalog is ever contacted.
package catalog

import (
	"fmt"
	urlpkg "net/url"
	"strings"
)

// Catalog is one known mod-hosting site.
type Catalog struct {
	ID     string // value Vortex stores in attributes.source
	Domain string // bare host, without "www."
}

var registry = map[string]*Catalog{
	"nexus": {ID: "nexus", Domain: "nexusmods.com"},
}

// Lookup returns the catalog for a source value, or false when the source is
// unrecognized (local installs, unknown hosts). Unrecognized is expected, not
// an error.
func Lookup(source string) (*Catalog, bool) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(source))]
	return c, ok
}

// ParseModURL extracts the game slug and numeric mod id from a canonical
// mod-page URL like "https://www.nexusmods.com/fallout4/mods/84015/".
// Returns ok=false for anything that does not match the pattern.
func (c *Catalog) ParseModURL(raw string) (slug, modID string, ok bool) {
	u, err := urlpkg.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", false
	}
	host := strings.ToLower(u.Hostname())
	if host != c.Domain && host != "www."+c.Domain {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 || !strings.EqualFold(parts[1], "mods") {
		return "", "", false
	}
	slug, modID = parts[0], parts[2]
	if slug == "" || !isDigits(modID) {
		return "", "", false
	}
	return slug, modID, true
}

// ModURL builds the canonical mod-page URL for a game slug and numeric id.
func (c *Catalog) ModURL(slug, modID string) string {
	return fmt.Sprintf("https://www.%s/%s/mods/%s/", c.Domain, slug, modID)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
