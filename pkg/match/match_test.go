package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		ignore string
		want   string
	}{
		{"lowercases", "LoginTest", "", "logintest"},
		{"strips ignored", "Login_Valid", "_ ", "loginvalid"},
		{"strips spaces", "Login Valid", "_ ", "loginvalid"},
		{"no ignore set", "a_b c", "", "a_b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.ignore))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		want    bool
	}{
		{"exact", "Smoke", "smoke", true},
		{"case insensitive", "SMOKE", "Smoke", true},
		{"star wildcard", "Login Valid", "Login*", true},
		{"star spans dots", "Top.Smoke.Sub", "Top.*", true},
		{"question mark", "Test1", "Test?", true},
		{"question mark needs one char", "Test", "Test?", false},
		{"underscore equals space", "Login_Valid", "login valid", true},
		{"no substring match", "Smoke", "mok", false},
		{"malformed pattern matches nothing", "name", "[", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.input, tt.pattern, "_ "))
		})
	}
}

func TestAny(t *testing.T) {
	patterns := []string{"first*", "second"}

	assert.True(t, Any("first one", patterns, "_ "))
	assert.True(t, Any("Second", patterns, "_ "))
	assert.False(t, Any("third", patterns, "_ "))
	assert.False(t, Any("anything", nil, "_ "))
}
