package namer

import (
	"regexp"
	"strings"
)

// ueAfterConsonant limits the lowercase ue→ü substitution to positions after
// a consonant so words that genuinely end in "ue" (Revue, Avenue) survive.
// The capitalized form "Ue" only occurs as a transliteration and is replaced
// unconditionally.
var ueAfterConsonant = regexp.MustCompile(`([bcdfghjklmnpqrstvwxzBCDFGHJKLMNPQRSTVWXZ])ue`)

// ToUmlauts produces the German umlaut spelling of an ASCII-transliterated
// title (ae→ä, oe→ö, ue→ü plus capitalized forms). It is a best-effort
// alternate search spelling, never a canonical output.
func ToUmlauts(text string) string {
	result := text
	result = strings.ReplaceAll(result, "ae", "ä")
	result = strings.ReplaceAll(result, "Ae", "Ä")
	result = strings.ReplaceAll(result, "oe", "ö")
	result = strings.ReplaceAll(result, "Oe", "Ö")
	result = strings.ReplaceAll(result, "Ue", "Ü")
	result = ueAfterConsonant.ReplaceAllString(result, "${1}ü")
	return result
}
