package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUmlauts(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Maedchen", "Mädchen"},
		{"Koenig", "König"},
		{"Muenchen", "München"},
		{"Aerger", "Ärger"},
		{"Oel", "Öl"},
		{"Uebel", "Übel"},
		// "ue" after a vowel is left alone.
		{"Neue Welt", "Neue Welt"},
		{"Treue", "Treue"},
		{"Plain Title", "Plain Title"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUmlauts(tt.input))
		})
	}
}
