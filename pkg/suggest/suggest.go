// Package suggest ranks near-miss name candidates for "not found"
// style error messages.
package suggest

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// DefaultMaxMatches caps how many recommendations Find returns.
	DefaultMaxMatches = 10
	// minRatio is the similarity a candidate needs to be recommended.
	minRatio = 0.75
)

// Finder ranks candidate names by similarity to a target name.
// The zero value compares raw strings and returns at most
// DefaultMaxMatches recommendations.
type Finder struct {
	// Normalize is applied to both sides before comparison. Nil leaves
	// strings as-is.
	Normalize func(string) string
	// MaxMatches caps the recommendations; zero means DefaultMaxMatches.
	MaxMatches int
}

// Find returns the candidates similar to name, most similar first.
// Ties keep the candidates' original order.
func (f Finder) Find(name string, candidates []string) []string {
	norm := f.Normalize
	if norm == nil {
		norm = func(s string) string { return s }
	}
	target := chars(norm(name))

	type scored struct {
		name  string
		ratio float64
	}
	var matches []scored
	for _, c := range candidates {
		ratio := difflib.NewMatcher(target, chars(norm(c))).Ratio()
		if ratio >= minRatio {
			matches = append(matches, scored{name: c, ratio: ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ratio > matches[j].ratio
	})

	max := f.MaxMatches
	if max <= 0 {
		max = DefaultMaxMatches
	}
	if len(matches) > max {
		matches = matches[:max]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// Format appends a "Did you mean" block to msg when recommendations
// exist, one candidate per indented line.
func Format(msg string, recommendations []string) string {
	if len(recommendations) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	b.WriteString(" Did you mean:")
	for _, r := range recommendations {
		b.WriteString("\n    ")
		b.WriteString(r)
	}
	return b.String()
}

// chars splits s into single-character strings, the unit the sequence
// matcher compares.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
