// Package tagpattern evaluates boolean tag expressions against test tag sets.
//
// A pattern is a glob over single tags, or a combination built from
// literal uppercase operators: NOT splits the pattern into a positive
// head and negated tails, OR requires any operand, AND (or &) requires
// all. For example "smokeANDregression" matches tag sets carrying both
// tags, "criticalNOTwip" matches sets with critical but not wip, and
// "NOTflaky" matches sets without flaky. Tag comparison is caseless and
// ignores underscores and spaces.
package tagpattern

import (
	"strings"

	"github.com/suitekit/core/pkg/match"
	"github.com/suitekit/core/pkg/model"
)

const tagIgnore = "_ "

// Patterns is a normalized list of tag patterns. The zero value matches
// nothing. Construction is the only place pattern syntax is interpreted;
// consumers just call Match.
type Patterns []expr

// New parses the given raw patterns. Empty strings are dropped.
func New(patterns ...string) Patterns {
	out := make(Patterns, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		out = append(out, parse(p))
	}
	return out
}

// Match reports whether any pattern matches the tag set.
func (p Patterns) Match(tags model.Tags) bool {
	for _, e := range p {
		if e.match(tags) {
			return true
		}
	}
	return false
}

type expr interface {
	match(tags model.Tags) bool
}

// parse splits on NOT first: the head must match and none of the tails
// may. An empty head makes the pattern a pure negation.
func parse(pattern string) expr {
	parts := strings.Split(pattern, "NOT")
	if len(parts) == 1 {
		return parseOr(pattern)
	}
	tails := make(orExpr, 0, len(parts)-1)
	for _, p := range parts[1:] {
		tails = append(tails, parseOr(p))
	}
	if parts[0] == "" {
		return notExpr{tail: tails}
	}
	return notExpr{head: parseOr(parts[0]), tail: tails}
}

func parseOr(pattern string) expr {
	parts := strings.Split(pattern, "OR")
	if len(parts) == 1 {
		return parseAnd(pattern)
	}
	out := make(orExpr, 0, len(parts))
	for _, p := range parts {
		out = append(out, parseAnd(p))
	}
	return out
}

func parseAnd(pattern string) expr {
	pattern = strings.ReplaceAll(pattern, "&", "AND")
	parts := strings.Split(pattern, "AND")
	if len(parts) == 1 {
		return single(pattern)
	}
	out := make(andExpr, 0, len(parts))
	for _, p := range parts {
		out = append(out, single(p))
	}
	return out
}

// single matches when any tag in the set matches the glob.
type single string

func (s single) match(tags model.Tags) bool {
	for _, tag := range tags {
		if match.Matches(tag, string(s), tagIgnore) {
			return true
		}
	}
	return false
}

type andExpr []expr

func (a andExpr) match(tags model.Tags) bool {
	for _, e := range a {
		if !e.match(tags) {
			return false
		}
	}
	return true
}

type orExpr []expr

func (o orExpr) match(tags model.Tags) bool {
	for _, e := range o {
		if e.match(tags) {
			return true
		}
	}
	return false
}

type notExpr struct {
	head expr // nil for pure negation
	tail expr
}

func (n notExpr) match(tags model.Tags) bool {
	if n.head != nil && !n.head.match(tags) {
		return false
	}
	return !n.tail.match(tags)
}
