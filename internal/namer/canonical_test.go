package namer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Alien (1979) [imdbid-tt0078748]", true},
		{"Das Boot (1981) [imdbid-tt00824915]", true},
		{"Alien (1979)", false},
		{"Alien [imdbid-tt0078748]", false},
		{"Alien (1979) [imdbid-0078748]", false},
		{"Alien.1979.1080p.BluRay-GRP", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCanonical(tt.name), "IsCanonical(%q)", tt.name)
	}
}

func TestValidIMDBID(t *testing.T) {
	assert.True(t, ValidIMDBID("tt0078748"))
	assert.True(t, ValidIMDBID("tt123456789"))
	assert.False(t, ValidIMDBID("tt123"))
	assert.False(t, ValidIMDBID("0078748"))
	assert.False(t, ValidIMDBID(""))

	// Lookup ids are stricter: 7 or 8 digits only.
	assert.True(t, ValidIMDBLookupID("tt0078748"))
	assert.True(t, ValidIMDBLookupID("tt00787481"))
	assert.False(t, ValidIMDBLookupID("tt007874812"))
	assert.False(t, ValidIMDBLookupID("tt078"))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"clean", "Movie Name (2020)", "Movie Name (2020)", nil},
		{"reserved chars", `Movie: The <Best>?`, "Movie The Best", nil},
		{"control chars", "Movie\x00\x1fName", "MovieName", nil},
		{"collapse spaces", "Movie    Name", "Movie Name", nil},
		{"trim dots and spaces", " .Movie Name. ", "Movie Name", nil},
		{"empty", "", "", ErrEmptyName},
		{"only junk", `<>:"/\|?*`, "", ErrEmptyName},
		{"too long", strings.Repeat("a", 201), "", ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCanonical(t *testing.T) {
	name, err := BuildCanonical("Alien", "1979", "tt0078748")
	require.NoError(t, err)
	assert.Equal(t, "Alien (1979) [imdbid-tt0078748]", name)
	assert.True(t, IsCanonical(name))

	name, err = BuildCanonical("Mission: Impossible", "1996", "tt0117060")
	require.NoError(t, err)
	assert.Equal(t, "Mission Impossible (1996) [imdbid-tt0117060]", name)
}
