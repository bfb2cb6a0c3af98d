package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagSet(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"case variants collapse", []string{"React", "react"}, []string{"React"}},
		{"first casing wins", []string{"frontend", "FrontEnd", "Backend"}, []string{"frontend", "Backend"}},
		{"trims whitespace", []string{"  React ", "Node.js"}, []string{"React", "Node.js"}},
		{"drops empties", []string{"", "  ", "ML"}, []string{"ML"}},
		{"preserves insertion order", []string{"designer", "ML", "designer", "QA"}, []string{"designer", "ML", "QA"}},
		{"empty input", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTagSet(tt.input))
		})
	}
}

func TestNormalizeTagSetIdempotent(t *testing.T) {
	inputs := [][]string{
		{"React", "react", " TypeScript", "", "QA"},
		{"a", "A", "b"},
		{},
	}
	for _, input := range inputs {
		once := NormalizeTagSet(input)
		twice := NormalizeTagSet(once)
		assert.Equal(t, once, twice)
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mins  int
		ok    bool
	}{
		{"midnight", "00:00", 0, true},
		{"last minute of day", "23:59", 1439, true},
		{"evening", "18:30", 1110, true},
		{"hour out of range", "24:00", 0, false},
		{"minute out of range", "12:60", 0, false},
		{"no leading zero", "9:00", 0, false},
		{"empty", "", 0, false},
		{"garbage", "noon", 0, false},
		{"trailing text", "10:00pm", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mins, ok := ParseClockTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.mins, mins)
			}
		})
	}
}

func TestIntersectTags(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected []string
	}{
		{"case-insensitive, keeps a-side casing", []string{"React", "SQL"}, []string{"react", "Figma"}, []string{"React"}},
		{"keeps a-side order", []string{"backend", "frontend"}, []string{"frontend", "backend"}, []string{"backend", "frontend"}},
		{"disjoint", []string{"ML"}, []string{"QA"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, intersectTags(tt.a, tt.b))
		})
	}
}
