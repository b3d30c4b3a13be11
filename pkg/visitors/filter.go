// Package visitors provides the concrete tree walkers: Filter prunes
// suites and tests by name and tag criteria, TagSetter rewrites test
// tags during the same kind of walk.
package visitors

import (
	"github.com/suitekit/core/pkg/model"
	"github.com/suitekit/core/pkg/tagpattern"
)

// TagMatcher reports whether a test's tag set satisfies a tag pattern.
// Implementations own pattern syntax and its failures; the Filter only
// calls Match.
type TagMatcher interface {
	Match(tags model.Tags) bool
}

// Filter is a model.Visitor that removes tests and suites not
// satisfying the configured criteria. Configuration is normalized once
// at construction and immutable afterwards. An unconfigured Filter
// skips the walk entirely.
type Filter struct {
	model.Base

	includeSuites *suiteNameFilter
	includeTests  *testNameFilter
	includeTags   TagMatcher
	excludeTags   TagMatcher
}

// FilterOption configures a Filter at construction.
type FilterOption func(*Filter)

// WithIncludeSuites keeps only the subtrees of suites whose name, or a
// dot-suffix of whose longname, matches one of the patterns.
func WithIncludeSuites(patterns ...string) FilterOption {
	return func(f *Filter) {
		if len(patterns) > 0 {
			f.includeSuites = &suiteNameFilter{patterns: patterns}
		}
	}
}

// WithIncludeTests keeps only tests whose name or longname matches one
// of the patterns.
func WithIncludeTests(patterns ...string) FilterOption {
	return func(f *Filter) {
		if len(patterns) > 0 {
			f.includeTests = &testNameFilter{patterns: patterns}
		}
	}
}

// WithIncludeTags keeps only tests whose tags satisfy one of the given
// tag patterns.
func WithIncludeTags(patterns ...string) FilterOption {
	return func(f *Filter) {
		if len(patterns) > 0 {
			f.includeTags = tagpattern.New(patterns...)
		}
	}
}

// WithExcludeTags drops tests whose tags satisfy one of the given tag
// patterns.
func WithExcludeTags(patterns ...string) FilterOption {
	return func(f *Filter) {
		if len(patterns) > 0 {
			f.excludeTags = tagpattern.New(patterns...)
		}
	}
}

// WithIncludeTagMatcher supplies an already-normalized inclusion
// matcher, reused unchanged.
func WithIncludeTagMatcher(m TagMatcher) FilterOption {
	return func(f *Filter) {
		f.includeTags = m
	}
}

// WithExcludeTagMatcher supplies an already-normalized exclusion
// matcher, reused unchanged.
func WithExcludeTagMatcher(m TagMatcher) FilterOption {
	return func(f *Filter) {
		f.excludeTags = m
	}
}

// NewFilter builds a Filter from the given options.
func NewFilter(opts ...FilterOption) *Filter {
	f := &Filter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Empty reports whether no criteria are configured.
func (f *Filter) Empty() bool {
	return f.includeSuites == nil && f.includeTests == nil &&
		f.includeTags == nil && f.excludeTags == nil
}

// StartSuite applies suite-name filtering when configured, otherwise
// narrows the suite's test list through each configured test-level
// predicate in turn: name inclusion, tag inclusion, tag exclusion.
func (f *Filter) StartSuite(s *model.Suite) model.Traversal {
	if f.Empty() {
		return model.SkipChildren
	}
	if f.includeSuites != nil {
		return f.filterBySuiteName(s)
	}
	if f.includeTests != nil {
		s.Tests = keep(s.Tests, f.includeTests.match)
	}
	if f.includeTags != nil {
		s.Tests = keep(s.Tests, func(t *model.Test) bool {
			return f.includeTags.Match(t.Tags)
		})
	}
	if f.excludeTags != nil {
		s.Tests = keep(s.Tests, func(t *model.Test) bool {
			return !f.excludeTags.Match(t.Tags)
		})
	}
	if len(s.Suites) == 0 {
		return model.SkipChildren
	}
	return model.Continue
}

// filterBySuiteName drops the tests of a non-matching suite and keeps
// descending so each child is judged against the same patterns. A
// matching suite is re-visited with a derived Filter whose suite-name
// axis is cleared: name filtering never re-applies inside a matched
// subtree, while test and tag criteria still do. The derived visit has
// already done the work, so the outer driver must not descend again.
func (f *Filter) filterBySuiteName(s *model.Suite) model.Traversal {
	if !f.includeSuites.match(s) {
		s.Tests = nil
		return model.Continue
	}
	derived := &Filter{
		includeTests: f.includeTests,
		includeTags:  f.includeTags,
		excludeTags:  f.excludeTags,
	}
	s.Visit(derived)
	return model.SkipChildren
}

// StartTest never descends; tests are narrowed in batch by StartSuite.
func (f *Filter) StartTest(*model.Test) model.Traversal {
	return model.SkipChildren
}

// StartKeyword never descends; keywords are irrelevant to filtering.
func (f *Filter) StartKeyword(*model.Keyword) model.Traversal {
	return model.SkipChildren
}

// EndSuite removes child suites left without any tests. It runs
// post-order, after every child finished its own pruning, so no suite
// below the root survives with zero tests. The root itself is never
// self-pruned.
func (f *Filter) EndSuite(s *model.Suite) {
	kept := s.Suites[:0]
	for _, child := range s.Suites {
		if child.CountTests() > 0 {
			kept = append(kept, child)
		}
	}
	s.Suites = kept
}

func keep(tests []*model.Test, pred func(*model.Test) bool) []*model.Test {
	kept := tests[:0]
	for _, t := range tests {
		if pred(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
