// Package snapshot locates, repairs, and decodes Vortex full-state backups.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Snapshot is the typed shape of a Vortex state backup. Only the sections the
// exporter reads are modeled; everything else in the document is ignored.
type Snapshot struct {
	Persistent Persistent `json:"persistent"`
	Settings   Settings   `json:"settings"`
}

// Persistent holds the installed-mod listing, profiles, and download archive
// metadata.
type Persistent struct {
	Mods      map[string]*ModList `json:"mods"`
	Profiles  map[string]*Profile `json:"profiles"`
	Downloads Downloads           `json:"downloads"`
}

// Settings holds the per-game active-profile mapping.
type Settings struct {
	Profiles ProfileSettings `json:"profiles"`
}

// ProfileSettings maps each game id to its last active profile id.
type ProfileSettings struct {
	LastActiveProfile map[string]string `json:"lastActiveProfile"`
}

// Profile is one Vortex profile. Profiles are keyed by profile id at the top
// level and point back at their game through GameID.
type Profile struct {
	GameID   string              `json:"gameId"`
	Name     string              `json:"name"`
	ModState map[string]ModState `json:"modState"`
}

// ModState is a profile's enable flag for one mod.
type ModState struct {
	Enabled bool `json:"enabled"`
}

// Mod is one installed-mod entry.
type Mod struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Attributes Attributes `json:"attributes"`
}

// Attributes are the candidate naming/versioning/source fields Vortex stores
// per mod. All of them are unreliable: any may be absent, blank, or stale.
type Attributes struct {
	LogicalFileName string     `json:"logicalFileName"`
	ModName         string     `json:"modName"`
	FileName        string     `json:"fileName"`
	Version         string     `json:"version"`
	ModVersion      string     `json:"modVersion"`
	ModID           FlexString `json:"modId"`
	Source          string     `json:"source"`
	Homepage        string     `json:"homepage"`
}

// Downloads is the snapshot's archive metadata section.
type Downloads struct {
	Files map[string]*DownloadFile `json:"files"`
}

// DownloadFile describes one downloaded archive.
type DownloadFile struct {
	Game      GameList        `json:"game"`
	LocalPath string          `json:"localPath"`
	Size      int64           `json:"size"`
	FileTime  FlexTime        `json:"fileTime"`
	ModInfo   DownloadModInfo `json:"modInfo"`
}

// DownloadModInfo is the nested name hint on a download entry.
type DownloadModInfo struct {
	Name string `json:"name"`
}

// ModList is a game's mod mapping with its stored key order preserved. The
// order is authoritative: it becomes the deploy index, so a plain Go map
// (which randomizes iteration) cannot represent it.
type ModList struct {
	Keys    []string
	Entries map[string]*Mod // nil value for null entries
}

// UnmarshalJSON decodes the object token-by-token so key order survives.
func (l *ModList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("mod list: expected object, got %v", tok)
	}
	l.Entries = make(map[string]*Mod)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("mod list: non-string key %v", keyTok)
		}
		var mod *Mod
		if err := dec.Decode(&mod); err != nil {
			return fmt.Errorf("mod list entry %q: %w", key, err)
		}
		l.Keys = append(l.Keys, key)
		l.Entries[key] = mod
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// FlexString accepts a JSON string or number. Vortex writes numeric ids as
// either depending on which extension created the attribute.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	// Large ids arrive as floats like 8.4015e+04; render them as integers.
	if f, err := num.Float64(); err == nil && f == float64(int64(f)) {
		*s = FlexString(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*s = FlexString(num.String())
	return nil
}

// FlexTime accepts a millisecond epoch number or an ISO-ish string and
// normalizes to unix seconds (0 when unparseable).
type FlexTime int64

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = 0
		return nil
	}
	if data[0] != '"' {
		var ms float64
		if err := json.Unmarshal(data, &ms); err != nil {
			return err
		}
		*t = FlexTime(int64(ms) / 1000)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	str = strings.TrimSpace(str)
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		*t = FlexTime(n / 1000)
		return nil
	}
	if ts, err := time.Parse(time.RFC3339, str); err == nil {
		*t = FlexTime(ts.Unix())
		return nil
	}
	*t = 0
	return nil
}

// GameList accepts a single game id or a list of them.
type GameList []string

func (g *GameList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*g = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single != "" {
		*g = GameList{single}
	}
	return nil
}

// ActiveModState returns the enable map for a game's active profile, or nil
// when the game has no mapped profile or the profile carries no mod state.
// Missing state is expected, not an error: every mod then reports disabled.
func (s *Snapshot) ActiveModState(gameID string) map[string]ModState {
	profileID, ok := s.Settings.Profiles.LastActiveProfile[gameID]
	if !ok || profileID == "" {
		return nil
	}
	profile, ok := s.Persistent.Profiles[profileID]
	if !ok || profile == nil {
		return nil
	}
	return profile.ModState
}
