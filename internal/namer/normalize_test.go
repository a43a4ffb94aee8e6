package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Léon: The Professional", "leon the professional"},
		{"Die Häschenschule", "die haschenschule"},
		{"Mad Max - Fury Road", "mad max fury road"},
		{"WALL·E", "walle"},
		{"  Spaced   Out  ", "spaced out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTitle(tt.input), "NormalizeTitle(%q)", tt.input)
	}
}

// Two spellings of the same title compare equal after normalization.
func TestNormalizeTitle_FoldsSpellings(t *testing.T) {
	assert.Equal(t, NormalizeTitle("Das Mädchen"), NormalizeTitle("Das Madchen"))
}
