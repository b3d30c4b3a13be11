package visitors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suitekit/core/pkg/model"
)

// linked builds Top -> Smoke -> Sub and returns the three suites.
func linked() (top, smoke, sub *model.Suite) {
	top = &model.Suite{Name: "Top"}
	smoke = top.AddSuite("Smoke")
	sub = smoke.AddSuite("Sub")
	return top, smoke, sub
}

func TestSuiteNameFilter_BareName(t *testing.T) {
	_, smoke, _ := linked()
	f := &suiteNameFilter{patterns: []string{"Smoke"}}

	assert.True(t, f.match(smoke))
}

func TestSuiteNameFilter_LongnameSuffix(t *testing.T) {
	top, smoke, sub := linked()

	full := &suiteNameFilter{patterns: []string{"Top.Smoke"}}
	assert.True(t, full.match(smoke))
	assert.False(t, full.match(top))
	assert.False(t, full.match(sub))

	tail := &suiteNameFilter{patterns: []string{"Smoke.Sub"}}
	assert.True(t, tail.match(sub))
}

func TestSuiteNameFilter_NoInteriorSegmentMatch(t *testing.T) {
	// "Smoke" is an interior segment of Top.Smoke.Sub, not a suffix
	// chain, so Sub must not match.
	_, _, sub := linked()
	f := &suiteNameFilter{patterns: []string{"Smoke"}}

	assert.False(t, f.match(sub))
}

func TestSuiteNameFilter_Wildcard(t *testing.T) {
	_, smoke, _ := linked()
	f := &suiteNameFilter{patterns: []string{"smo?e"}}

	assert.True(t, f.match(smoke))
}

func TestTestNameFilter(t *testing.T) {
	root := &model.Suite{Name: "Root"}
	test := root.AddTest("Login Valid")

	byName := &testNameFilter{patterns: []string{"login_valid"}}
	assert.True(t, byName.match(test))

	byLongname := &testNameFilter{patterns: []string{"Root.Login Valid"}}
	assert.True(t, byLongname.match(test))

	noTruncation := &testNameFilter{patterns: []string{"Valid"}}
	assert.False(t, noTruncation.match(test))
}
