package renamer

import (
	"regexp"
	"strings"
)

// RenameExtensions are direct children renamed to the canonical name as-is.
var RenameExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m4v": true, ".nfo": true,
}

// SubtitleExtensions get a language/forced suffix before the extension.
var SubtitleExtensions = map[string]bool{
	".srt": true, ".sub": true, ".ass": true, ".ssa": true,
	".vtt": true, ".idx": true, ".sup": true,
}

// languageTokens maps file-name language tokens to 2-letter codes. Ordered:
// the first matching token wins.
var languageTokens = []struct {
	token string
	code  string
}{
	{"ger", "de"}, {"german", "de"}, {"deu", "de"}, {"deutsch", "de"},
	{"eng", "en"}, {"english", "en"},
	{"fre", "fr"}, {"french", "fr"},
	{"spa", "es"}, {"spanish", "es"},
	{"ita", "it"}, {"italian", "it"},
}

var languageRes = buildLanguageRes()
var forcedRe = regexp.MustCompile(`[._]forced[._]`)

func buildLanguageRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(languageTokens))
	for i, lt := range languageTokens {
		res[i] = regexp.MustCompile(`[._]` + lt.token + `[._]`)
	}
	return res
}

// SubtitleSuffix derives the language suffix (".de", ".en", … or ".forced")
// for a subtitle file name. Tokens must be delimited by dots or underscores;
// no recognizable token yields no suffix.
func SubtitleSuffix(fileName string) string {
	low := strings.ToLower(fileName)
	for i, re := range languageRes {
		if re.MatchString(low) {
			return "." + languageTokens[i].code
		}
	}
	if forcedRe.MatchString(low) {
		return ".forced"
	}
	return ""
}
