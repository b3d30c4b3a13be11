package model

import "github.com/suitekit/core/pkg/match"

// Tag comparison ignores case, underscores and spaces, so "My_Tag" and
// "my tag" name the same tag.
const tagIgnore = "_ "

// Tags is an ordered collection of unique test tags. Iteration order is
// insertion order.
type Tags []string

// Add appends each tag not already present. Empty strings are dropped.
func (t *Tags) Add(tags ...string) {
	for _, tag := range tags {
		if tag == "" || t.Contains(tag) {
			continue
		}
		*t = append(*t, tag)
	}
}

// Remove deletes every tag matching any of the glob patterns.
func (t *Tags) Remove(patterns ...string) {
	if len(patterns) == 0 {
		return
	}
	kept := (*t)[:0]
	for _, tag := range *t {
		if !match.Any(tag, patterns, tagIgnore) {
			kept = append(kept, tag)
		}
	}
	*t = kept
}

// Contains reports whether the set already holds tag under normalized
// comparison.
func (t Tags) Contains(tag string) bool {
	key := match.Normalize(tag, tagIgnore)
	for _, existing := range t {
		if match.Normalize(existing, tagIgnore) == key {
			return true
		}
	}
	return false
}
