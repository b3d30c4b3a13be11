package visitors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suitekit/core/pkg/model"
)

func TestTagSetter_Add(t *testing.T) {
	root := &model.Suite{Name: "Root"}
	test := root.AddTest("T1")

	setter := NewTagSetter([]string{"smoke"}, nil)
	root.Visit(setter)
	assert.Equal(t, model.Tags{"smoke"}, test.Tags)

	// Re-applying is idempotent.
	root.Visit(setter)
	assert.Equal(t, model.Tags{"smoke"}, test.Tags)
}

func TestTagSetter_AddThenRemove(t *testing.T) {
	root := &model.Suite{Name: "Root"}
	test := root.AddTest("T1", "wip", "slow")

	root.Visit(NewTagSetter([]string{"smoke"}, []string{"w*"}))

	assert.Equal(t, model.Tags{"slow", "smoke"}, test.Tags)
}

func TestTagSetter_ReachesEveryTest(t *testing.T) {
	root := &model.Suite{Name: "Root"}
	t1 := root.AddTest("T1")
	child := root.AddSuite("Child")
	t2 := child.AddTest("T2")

	root.Visit(NewTagSetter([]string{"tagged"}, nil))

	assert.True(t, t1.Tags.Contains("tagged"))
	assert.True(t, t2.Tags.Contains("tagged"))
}

func TestTagSetter_Unconfigured(t *testing.T) {
	setter := NewTagSetter(nil, nil)

	assert.False(t, setter.Configured())
	assert.Equal(t, model.SkipChildren, setter.StartSuite(&model.Suite{}))
}

func TestTagSetter_SkipsKeywords(t *testing.T) {
	setter := NewTagSetter([]string{"x"}, nil)

	assert.Equal(t, model.SkipChildren, setter.StartTest(&model.Test{}))
	assert.Equal(t, model.SkipChildren, setter.StartKeyword(&model.Keyword{}))
}
