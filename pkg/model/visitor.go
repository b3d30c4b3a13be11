package model

// Traversal is the continuation signal a visitor hook returns, telling
// the driver whether to descend into the node's children.
type Traversal int

const (
	// Continue descends into the node's children.
	Continue Traversal = iota
	// SkipChildren skips the node's children. The closing hook still runs.
	SkipChildren
)

// Visitor receives hooks during a depth-first walk of a suite tree.
// Hooks may replace or shrink the child collections of the node they
// receive; the driver observes the post-mutation collections rather
// than a snapshot taken before the hook ran.
type Visitor interface {
	StartSuite(s *Suite) Traversal
	EndSuite(s *Suite)
	StartTest(t *Test) Traversal
	EndTest(t *Test)
	StartKeyword(k *Keyword) Traversal
	EndKeyword(k *Keyword)
	// LogMessage is notified for each message under a visited keyword.
	LogMessage(m *Message)
}

// Base is a Visitor whose hooks do nothing and always continue. Embed
// it so concrete walkers implement only the hooks they need.
type Base struct{}

func (Base) StartSuite(*Suite) Traversal     { return Continue }
func (Base) EndSuite(*Suite)                 {}
func (Base) StartTest(*Test) Traversal       { return Continue }
func (Base) EndTest(*Test)                   {}
func (Base) StartKeyword(*Keyword) Traversal { return Continue }
func (Base) EndKeyword(*Keyword)             {}
func (Base) LogMessage(*Message)             {}

// Visit walks the suite depth-first. StartSuite runs before descent;
// EndSuite runs exactly once per visited suite whether or not descent
// occurred. Tests are walked before child suites, and both lists are
// re-read live so a hook that prunes them shapes the rest of the walk.
func (s *Suite) Visit(v Visitor) {
	if v.StartSuite(s) == Continue {
		for i := 0; i < len(s.Tests); i++ {
			s.Tests[i].Visit(v)
		}
		for i := 0; i < len(s.Suites); i++ {
			s.Suites[i].Visit(v)
		}
	}
	v.EndSuite(s)
}

// Visit dispatches the test's hooks and, when continuing, its keywords.
func (t *Test) Visit(v Visitor) {
	if v.StartTest(t) == Continue {
		for i := 0; i < len(t.Keywords); i++ {
			t.Keywords[i].Visit(v)
		}
	}
	v.EndTest(t)
}

// Visit dispatches the keyword's hooks, its messages and, when
// continuing, its nested keywords.
func (k *Keyword) Visit(v Visitor) {
	if v.StartKeyword(k) == Continue {
		for i := 0; i < len(k.Messages); i++ {
			v.LogMessage(k.Messages[i])
		}
		for i := 0; i < len(k.Keywords); i++ {
			k.Keywords[i].Visit(v)
		}
	}
	v.EndKeyword(k)
}
