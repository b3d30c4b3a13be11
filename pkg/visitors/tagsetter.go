package visitors

import "github.com/suitekit/core/pkg/model"

// TagSetter is a model.Visitor that adds and removes tags on every test
// it reaches. Added values are inserted if absent, preserving order;
// removal values are glob patterns.
type TagSetter struct {
	model.Base

	add    []string
	remove []string
}

// NewTagSetter builds a setter from the ordered add values and remove
// patterns. Either list may be empty.
func NewTagSetter(add, remove []string) *TagSetter {
	return &TagSetter{add: add, remove: remove}
}

// Configured reports whether the setter would change anything.
func (ts *TagSetter) Configured() bool {
	return len(ts.add) > 0 || len(ts.remove) > 0
}

// StartSuite descends only when configured, so a no-op setter never
// walks the tree.
func (ts *TagSetter) StartSuite(*model.Suite) model.Traversal {
	if !ts.Configured() {
		return model.SkipChildren
	}
	return model.Continue
}

// StartTest applies additions then removals to the test's tag set.
// Keywords are irrelevant to tag mutation.
func (ts *TagSetter) StartTest(t *model.Test) model.Traversal {
	t.Tags.Add(ts.add...)
	t.Tags.Remove(ts.remove...)
	return model.SkipChildren
}

// StartKeyword never descends.
func (ts *TagSetter) StartKeyword(*model.Keyword) model.Traversal {
	return model.SkipChildren
}
