// Package match implements case-insensitive glob matching over normalized names.
package match

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Normalize lowercases s and strips every character present in ignore.
func Normalize(s, ignore string) string {
	s = strings.ToLower(s)
	if ignore == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(ignore, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Matches reports whether name matches pattern. Both sides are normalized
// before comparison and * and ? wildcards apply. A malformed pattern
// matches nothing.
func Matches(name, pattern, ignore string) bool {
	ok, err := doublestar.Match(Normalize(pattern, ignore), Normalize(name, ignore))
	return err == nil && ok
}

// Any reports whether name matches any of the patterns, tested in order.
func Any(name string, patterns []string, ignore string) bool {
	for _, p := range patterns {
		if Matches(name, p, ignore) {
			return true
		}
	}
	return false
}
