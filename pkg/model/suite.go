// Package model defines the suite tree that visitors walk and mutate.
package model

// Suite is a hierarchical grouping node containing nested suites and tests.
// Visitors mutate its child collections in place during a walk.
type Suite struct {
	// Name is the leaf label of this suite.
	Name string `json:"name" yaml:"name"`
	// Suites contains the child suites in order.
	Suites []*Suite `json:"suites,omitempty" yaml:"suites,omitempty"`
	// Tests contains the tests owned directly by this suite, in order.
	Tests []*Test `json:"tests,omitempty" yaml:"tests,omitempty"`

	parent *Suite
}

// Longname returns the dot-joined path of names from the root suite down
// to this one. The root carries no dot prefix.
func (s *Suite) Longname() string {
	if s.parent == nil {
		return s.Name
	}
	return s.parent.Longname() + "." + s.Name
}

// CountTests returns the number of tests in this suite and all suites
// below it.
func (s *Suite) CountTests() int {
	count := len(s.Tests)
	for _, sub := range s.Suites {
		count += sub.CountTests()
	}
	return count
}

// AddSuite appends a child suite with the given name and links it to s.
func (s *Suite) AddSuite(name string) *Suite {
	child := &Suite{Name: name, parent: s}
	s.Suites = append(s.Suites, child)
	return child
}

// AddTest appends a test with the given name and tags and links it to s.
func (s *Suite) AddTest(name string, tags ...string) *Test {
	t := &Test{Name: name, parent: s}
	t.Tags.Add(tags...)
	s.Tests = append(s.Tests, t)
	return t
}

// Relink restores parent pointers throughout the tree. Needed after a
// tree is built externally, such as decoding from a document, since
// Longname depends on the links.
func (s *Suite) Relink() {
	for _, t := range s.Tests {
		t.parent = s
	}
	for _, child := range s.Suites {
		child.parent = s
		child.Relink()
	}
}
