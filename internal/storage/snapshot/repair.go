package snapshot

import (
	"fmt"
	"strings"
)

// RepairDuplicateKeys rewrites duplicate object keys in raw JSON text so the
// document decodes losslessly. Vortex (via some of its extensions) can emit
// the same key twice within one object; a standard decoder would silently
// keep the last occurrence and drop the rest. Each repeated key is renamed by
// appending " (Duplicate)", then " (Duplicate 2)", and so on, picking the
// first suffix not already present in that object.
//
// The scan is a small state machine tracking string literals (with escapes)
// and a stack of open objects, one seen-key set per object. Key comparison is
// case-insensitive. Running the repair on already-repaired text changes
// nothing. Non-key string content is never touched.
func RepairDuplicateKeys(data []byte) []byte {
	s := string(data)
	var out strings.Builder
	out.Grow(len(s))

	var scopes []map[string]bool
	var prev byte // last significant (non-whitespace) byte outside strings

	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			end := findStringEnd(s, i)
			if end < 0 {
				// Unterminated literal; copy the rest and let the parser complain.
				out.WriteString(s[i:])
				return []byte(out.String())
			}
			content := s[i+1 : end]
			if isKeyPosition(prev, s, end+1) && len(scopes) > 0 {
				seen := scopes[len(scopes)-1]
				name := renameIfSeen(content, seen)
				out.WriteByte('"')
				out.WriteString(name)
				out.WriteByte('"')
			} else {
				out.WriteString(s[i : end+1])
			}
			prev = '"'
			i = end + 1
		case '{':
			scopes = append(scopes, make(map[string]bool))
			out.WriteByte(c)
			prev = c
			i++
		case '}':
			if len(scopes) > 0 {
				scopes = scopes[:len(scopes)-1]
			}
			out.WriteByte(c)
			prev = c
			i++
		case ' ', '\t', '\n', '\r':
			out.WriteByte(c)
			i++
		default:
			out.WriteByte(c)
			prev = c
			i++
		}
	}
	return []byte(out.String())
}

// findStringEnd returns the index of the closing quote of the string literal
// opening at start, honoring backslash escapes, or -1 if unterminated.
func findStringEnd(s string, start int) int {
	for j := start + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j
		}
	}
	return -1
}

// isKeyPosition reports whether a string literal is an object key: the
// nearest significant byte before it is '{' or ',' and the nearest
// non-whitespace byte after the closing quote is ':'.
func isKeyPosition(prev byte, s string, after int) bool {
	if prev != '{' && prev != ',' {
		return false
	}
	for j := after; j < len(s); j++ {
		switch s[j] {
		case ' ', '\t', '\n', '\r':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// renameIfSeen registers key in seen (lower-cased) and returns it unchanged
// when fresh, or with the first free " (Duplicate N)" suffix when repeated.
func renameIfSeen(key string, seen map[string]bool) string {
	lower := strings.ToLower(key)
	if !seen[lower] {
		seen[lower] = true
		return key
	}
	renamed := key + " (Duplicate)"
	for n := 2; seen[strings.ToLower(renamed)]; n++ {
		renamed = fmt.Sprintf("%s (Duplicate %d)", key, n)
	}
	seen[strings.ToLower(renamed)] = true
	return renamed
}
