package namer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents strips diacritics (ä→a, é→e) for accent-insensitive
// comparison. The result is for matching only, never for display.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeTitle reduces a title to a comparison key: lowercase, accents
// folded, punctuation dropped, whitespace collapsed. Two spellings of the
// same title normalize to the same key.
func NormalizeTitle(title string) string {
	s := strings.ToLower(FoldAccents(title))

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
