package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"Hi, my name is Priya and I build backends", "Priya", true},
		{"I'm jordan, nice to meet you", "Jordan", true},
		{"I am Alex.", "Alex", true},
		{"My NAME IS sam!", "Sam", true},
		{"I have five years of experience", "", false},
		{"my name is ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		name, ok := ExtractName(tt.text)
		require.Equal(t, tt.ok, ok, "text: %q", tt.text)
		assert.Equal(t, tt.want, name, "text: %q", tt.text)
	}
}

func TestDetectPosition(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"I'm applying for the software engineer role", "Software Engineer", true},
		{"I work as a UI/UX designer", "UI/UX Designer", true},
		{"mostly machine learning projects", "ML Engineer", true},
		{"I am a front end developer", "Frontend Developer", true},
		{"I like hiking", "", false},
	}
	for _, tt := range tests {
		pos, ok := DetectPosition(tt.text)
		require.Equal(t, tt.ok, ok, "text: %q", tt.text)
		assert.Equal(t, tt.want, pos, "text: %q", tt.text)
	}
}

func TestDetectPositionSpecificBeatsGeneric(t *testing.T) {
	// "designer" alone is in the table too; the compound phrase must win.
	pos, ok := DetectPosition("senior ui/ux designer position")
	require.True(t, ok)
	assert.Equal(t, "UI/UX Designer", pos)
}
