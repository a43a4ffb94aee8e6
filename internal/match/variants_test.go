package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kommerzienrat/tmdb-rename/internal/match"
)

func TestGenerateVariants(t *testing.T) {
	tests := []struct {
		name  string
		title string
		year  string
		want  []match.Variant
	}{
		{
			name:  "exact then unconstrained",
			title: "Alien",
			year:  "1979",
			want: []match.Variant{
				{Query: "Alien", Year: "1979"},
				{Query: "Alien", Year: ""},
			},
		},
		{
			name:  "no year collapses to one variant",
			title: "Alien",
			year:  "",
			want: []match.Variant{
				{Query: "Alien", Year: ""},
			},
		},
		{
			name:  "umlaut respelling follows exact",
			title: "Die Haeschenschule",
			year:  "2017",
			want: []match.Variant{
				{Query: "Die Haeschenschule", Year: "2017"},
				{Query: "Die Haeschenschule", Year: ""},
				{Query: "Die Häschenschule", Year: "2017"},
				{Query: "Die Häschenschule", Year: ""},
			},
		},
		{
			name:  "and becomes ampersand",
			title: "Fast And Furious",
			year:  "2001",
			want: []match.Variant{
				{Query: "Fast And Furious", Year: "2001"},
				{Query: "Fast And Furious", Year: ""},
				{Query: "Fast & Furious", Year: "2001"},
				{Query: "Fast & Furious", Year: ""},
			},
		},
		{
			name:  "long titles add word truncations",
			title: "The Lord Of The Rings",
			year:  "2001",
			want: []match.Variant{
				{Query: "The Lord Of The Rings", Year: "2001"},
				{Query: "The Lord Of The Rings", Year: ""},
				{Query: "The Lord", Year: "2001"},
				{Query: "The Lord Of", Year: "2001"},
			},
		},
		{
			name:  "part before dash separator",
			title: "Oceans Eleven - Directors Cut",
			year:  "2001",
			want: []match.Variant{
				{Query: "Oceans Eleven - Directors Cut", Year: "2001"},
				{Query: "Oceans Eleven - Directors Cut", Year: ""},
				{Query: "Oceans Eleven", Year: "2001"},
				{Query: "Oceans Eleven -", Year: "2001"},
			},
		},
		{
			name:  "short dash prefix is skipped",
			title: "Ed - Der Film",
			year:  "1996",
			want: []match.Variant{
				{Query: "Ed - Der Film", Year: "1996"},
				{Query: "Ed - Der Film", Year: ""},
				{Query: "Ed -", Year: "1996"},
				{Query: "Ed - Der", Year: "1996"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match.GenerateVariants(tt.title, tt.year))
		})
	}
}
