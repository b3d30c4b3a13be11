package visitors

import (
	"strings"

	"github.com/suitekit/core/pkg/match"
	"github.com/suitekit/core/pkg/model"
)

// Name matching ignores case, underscores and spaces, same as tag
// normalization.
const nameIgnore = "_ "

type suiteNameFilter struct {
	patterns []string
}

// match reports whether the suite's bare name matches, or any
// dot-suffix of its longname does. Truncation runs strictly segment by
// segment from the front, so interior segments out of path order never
// match.
func (f *suiteNameFilter) match(s *model.Suite) bool {
	if match.Any(s.Name, f.patterns, nameIgnore) {
		return true
	}
	return f.matchLongnameEnd(s.Longname())
}

func (f *suiteNameFilter) matchLongnameEnd(name string) bool {
	for strings.Contains(name, ".") {
		if match.Any(name, f.patterns, nameIgnore) {
			return true
		}
		_, name, _ = strings.Cut(name, ".")
	}
	return false
}

type testNameFilter struct {
	patterns []string
}

// match checks the test's name and longname once each. Tests are
// leaves, so no truncation applies.
func (f *testNameFilter) match(t *model.Test) bool {
	return match.Any(t.Name, f.patterns, nameIgnore) ||
		match.Any(t.Longname(), f.patterns, nameIgnore)
}
