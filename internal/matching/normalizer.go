package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize normalizes a string for search comparison
func Normalize(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	// Collapse whitespace
	return strings.Join(strings.Fields(s), " ")
}

// Contains reports whether any of the optional fields contains the query,
// ignoring case, accents and repeated whitespace. An empty query matches
// everything.
func Contains(query string, fields ...*string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if f == nil {
			continue
		}
		if strings.Contains(Normalize(*f), q) {
			return true
		}
	}
	return false
}
