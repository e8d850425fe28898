package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Sports", "sports"},
		{"spaces become hyphens", "Community Events", "community-events"},
		{"mixed case", "Cultural NEWS", "cultural-news"},
		{"punctuation stripped", "Kids & Youth!", "kids-youth"},
		{"multiple spaces collapse", "a   b", "a-b"},
		{"leading and trailing trimmed", "  -hello-  ", "hello"},
		{"digits kept", "Top 10", "top-10"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"sports", "community-events", "top-10", "a"}
	for _, s := range valid {
		assert.True(t, IsValid(s), s)
	}

	invalid := []string{"", "Sports", "has space", "-leading", "trailing-", "double--hyphen", "ünïcode"}
	for _, s := range invalid {
		assert.False(t, IsValid(s), s)
	}
}

func TestMakeOutputIsValid(t *testing.T) {
	inputs := []string{"Community Events", "Kids & Youth!", "  Annual   Gala 2024  "}
	for _, in := range inputs {
		slug := Make(in)
		assert.True(t, IsValid(slug), "Make(%q) = %q", in, slug)
	}
}
