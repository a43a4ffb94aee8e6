package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitleYear(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantYear  string
	}{
		{"scene release", "Some.Movie.2019.1080p.BluRay.x264-GROUP", "Some Movie", "2019"},
		{"german dual language", "Mad.Max.Fury.Road.2015.German.DL.1080p.BluRay.x264-GROUP", "Mad Max Fury Road", "2015"},
		{"plain with year", "Alien (1979)", "Alien", "1979"},
		{"no year", "The.Matrix.Reloaded", "The Matrix Reloaded", ""},
		{"underscores", "Blade_Runner_1982", "Blade Runner", "1982"},
		{"season token stripped", "Breaking.Bad.S01.German.1080p", "Breaking Bad", ""},
		{"episode token stripped", "Show.Name.S02E05.720p.WEB", "Show Name", ""},
		{"staffel stripped", "Der.Tatortreiniger.Staffel 3", "Der Tatortreiniger", ""},
		{"collection phrase removed", "Alien Collection 1979-1997", "Alien", ""},
		{"release prefix", "grp-Some.Movie.2001.BluRay", "Some Movie", "2001"},
		{"umlauts survive", "Das.Boot.1981.German", "Das Boot", "1981"},
		{"accents survive", "Amélie.2001.1080p.BluRay.x264-GROUP", "Amélie", "2001"},
		{"french title", "Léon.Der.Profi.1994.French.DL.1080p", "Léon Der Profi", "1994"},
		{"extension stripped", "Inception.2010.mkv", "Inception", "2010"},
		{"end only hd", "Old Movie HD", "Old Movie", ""},
		{"too short", "A.2019.1080p", "", "2019"},
		{"empty after cleanup", "1080p.x264", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, year := ExtractTitleYear(tt.input)
			assert.Equal(t, tt.wantTitle, title, "title of %q", tt.input)
			assert.Equal(t, tt.wantYear, year, "year of %q", tt.input)
		})
	}
}

// The year-position heuristic: content after a year found deep in the name
// is release noise and never leaks into the title.
func TestExtractTitleYear_TruncatesAfterLateYear(t *testing.T) {
	title, year := ExtractTitleYear("The.Shawshank.Redemption.1994.Whatever.Tag.Soup.Here")
	assert.Equal(t, "The Shawshank Redemption", title)
	assert.Equal(t, "1994", year)
}

// A year in the first few characters keeps the text after it: it is likely
// part of the title ("2001 A Space Odyssey").
func TestExtractTitleYear_KeepsEarlyYearTitles(t *testing.T) {
	title, year := ExtractTitleYear("2001.A.Space.Odyssey")
	assert.Equal(t, "A Space Odyssey", title)
	assert.Equal(t, "2001", year)
}

func TestExtractTitleYear_NeverReturnsUnsafeCharacters(t *testing.T) {
	inputs := []string{
		"Movie: The <Best>?.2019.mkv",
		`Weird|Name"With\Junk.1999`,
		"Tab\tand\x01control.2005.1080p",
		"Normal.Movie.2010.BluRay",
	}
	for _, input := range inputs {
		title, _ := ExtractTitleYear(input)
		assert.NotContains(t, title, "<")
		assert.NotContains(t, title, ">")
		assert.NotContains(t, title, ":")
		assert.NotContains(t, title, "?")
		assert.NotContains(t, title, "|")
		assert.NotContains(t, title, `"`)
		assert.NotContains(t, title, `\`)
		assert.NotContains(t, title, "/")
		for _, r := range title {
			assert.GreaterOrEqual(t, r, rune(0x20), "control char in %q", title)
		}
	}
}

func TestIsCryptic(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"grp-somemovie-1080p.mkv", true},
		{"xy.mkv", true},
		{"a1b2c3.mkv", true},
		{"Some.Movie.2019.mkv", false},
		{"The Matrix (1999).mkv", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCryptic(tt.input), "IsCryptic(%q)", tt.input)
	}
}

func TestMatchesCollectionPhrase(t *testing.T) {
	assert.True(t, MatchesCollectionPhrase("Alien Collection"))
	assert.True(t, MatchesCollectionPhrase("James Bond Sammlung"))
	assert.True(t, MatchesCollectionPhrase("Star Wars Saga"))
	assert.True(t, MatchesCollectionPhrase("Rocky Anthology"))
	assert.True(t, MatchesCollectionPhrase("Box.Set Classics"))
	assert.True(t, MatchesCollectionPhrase("Trilogie 1977-1983"))
	assert.False(t, MatchesCollectionPhrase("Alien (1979)"))
	assert.False(t, MatchesCollectionPhrase("Boxing Movie"))
}

func TestHasSeasonCue(t *testing.T) {
	assert.True(t, HasSeasonCue("Show S01"))
	assert.True(t, HasSeasonCue("Some Show Season 2"))
	assert.True(t, HasSeasonCue("Serie Staffel 4"))
	assert.False(t, HasSeasonCue("Plain Movie (2010)"))
}
