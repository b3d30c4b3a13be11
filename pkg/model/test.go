package model

// Test is a leaf execution unit owning a set of tags.
type Test struct {
	// Name is the leaf label of this test.
	Name string `json:"name" yaml:"name"`
	// Tags holds the test's labels in insertion order.
	Tags Tags `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Keywords contains the test's keywords in execution order.
	Keywords []*Keyword `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	parent *Suite
}

// Longname returns the dot-joined path from the root suite to this test.
func (t *Test) Longname() string {
	if t.parent == nil {
		return t.Name
	}
	return t.parent.Longname() + "." + t.Name
}

// Keyword is an opaque traversal leaf below a test. Walkers dispatch
// into it without inspecting its content.
type Keyword struct {
	Name     string     `json:"name" yaml:"name"`
	Keywords []*Keyword `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Messages []*Message `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Message is a log entry recorded under a keyword.
type Message struct {
	Text  string `json:"text" yaml:"text"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}
