package renamer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kommerzienrat/tmdb-rename/internal/renamer"
)

func TestSubtitleSuffix(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"movie.ger.srt", ".de"},
		{"Movie.GERMAN.srt", ".de"},
		{"movie.deu.srt", ".de"},
		{"movie_deutsch_.srt", ".de"},
		{"movie.eng.srt", ".en"},
		{"movie.english.srt", ".en"},
		{"movie.fre.srt", ".fr"},
		{"movie.spa.sub", ".es"},
		{"movie.ita.sub", ".it"},
		{"movie.eng.forced.srt", ".en"},
		{"movie.forced.srt", ".forced"},
		{"movie.srt", ""},
		{"germanmovie.srt", ""},
		{"movie.gero.srt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, renamer.SubtitleSuffix(tt.fileName))
		})
	}
}
