// Package namer turns noisy release-style folder and file names into clean
// title/year candidates and detects episode, collection and canonical-name
// shapes. All functions are pure; no I/O happens here.
package namer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// VideoExtensions are the file extensions treated as video content.
var VideoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m4v": true,
	".wmv": true, ".mov": true, ".ts": true, ".m2ts": true,
}

// releasePatterns are stripped from names before title extraction. Ordered:
// audio formats before their substrings (DTS-HD MA before DTS), specific
// before generic. The trailing "-GROUP" pattern must stay last.
var releasePatterns = compileAll(`(?i)`,
	`\bTrueHD\b`,
	`\bDTS-HD[\s.]?MA\b`,
	`\bDTS-HD\b`,
	`\bDTS\b`,
	`\bAtmos\b`,
	`\bDD[57][.\s]?1\b`,
	`\bDDP?5[.\s]?1\b`,
	`\bAC3\b`,
	`\bEAC3\b`,
	`\bAAC\b`,
	`\bFLAC\b`,
	`\bGerman\b`,
	`\bGER\b`,
	`\bEnglish\b`,
	`\bENG\b`,
	`\bFrench\b`,
	`\bSpanish\b`,
	`\bItalian\b`,
	`\bRussian\b`,
	`\bDL\b`,
	`\bDUAL\b`,
	`\bMULTi\b`,
	`\bML\b`,
	`\b1080p\b`,
	`\b2160p\b`,
	`\b720p\b`,
	`\b480p\b`,
	`\b4K\b`,
	`\bUHD\b`,
	`\bBluRay\b`,
	`\bBlu-Ray\b`,
	`\bBDRip\b`,
	`\bBRRip\b`,
	`\bWEB-DL\b`,
	`\bWEBDL\b`,
	`\bWEBRip\b`,
	`\bWEB\b`,
	`\bDVDRip\b`,
	`\bDVD\b`,
	`\bHDTV\b`,
	`\bPDTV\b`,
	`\bx264\b`,
	`\bx265\b`,
	`\bH[.\s]?264\b`,
	`\bH[.\s]?265\b`,
	`\bHEVC\b`,
	`\bAVC\b`,
	`\bVC-?1\b`,
	`\bXviD\b`,
	`\bDivX\b`,
	`\bRemux\b`,
	`\bEXTENDED\b`,
	`\bUNRATED\b`,
	`\bREMASTERED\b`,
	`\bDirectors[\s.]?Cut\b`,
	`\bIMAX\b`,
	`\bTHEATRICAL\b`,
	`\bUNCUT\b`,
	`\bHDR10Plus\b`,
	`\bHDR10\b`,
	`\bHDR\b`,
	`\bDoVi\b`,
	`\bDolby[\s.]?Vision\b`,
	`\bHLG\b`,
	`\b10bit\b`,
	`\b8bit\b`,
	`\bCOMPLETE\b`,
	`\bPROPER\b`,
	`\bREAL\b`,
	`\bREPACK\b`,
	`\bINTERNAL\b`,
	`\bLIMITED\b`,
	`-[A-Za-z0-9]+$`,
)

// endOnlyPatterns are ambiguous tokens only stripped at the end of a name
// ("DC" could be a title word, "Washington DC").
var endOnlyPatterns = compileAll(`(?i)`,
	`\bDC\b\s*$`,
	`\bHD\b\s*$`,
	`\bSD\b\s*$`,
)

// collectionPatterns mark a name as a multi-film collection.
var collectionPatterns = compileAll(`(?i)`,
	`collection`,
	`sammlung`,
	`anthology`,
	`saga`,
	`box\.?set`,
	`\d{4}\s*[-–]\s*\d{4}`,
)

// seasonPatterns remove episode/season numbering from the working text.
var seasonPatterns = compileAll(`(?i)`,
	`S\d{1,2}E\d{1,3}`,
	`\bS\d{1,2}\b`,
	`\d{1,2}x\d{1,3}`,
	`Season\s?\d{1,2}`,
	`Staffel\s?\d{1,2}`,
)

var (
	yearRe        = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	leadingTagRe  = regexp.MustCompile(`(?i)^[a-z0-9]{2,8}[-_]\s*`)
	disallowedRe  = regexp.MustCompile(`[^\p{L}\p{N}\s&'\-]`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	edgeHyphenRe  = regexp.MustCompile(`^[\s\-]+|[\s\-]+$`)
	crypticStemRe = regexp.MustCompile(`(?i)^[a-z0-9]{2,8}[-_][a-z0-9]+[-_][a-z0-9]+$`)
	alphaRunRe    = regexp.MustCompile(`[a-zA-Z]{3,}`)
	seasonCueRe   = regexp.MustCompile(`(?i)s\d{1,2}|season|staffel`)
)

// yearTailCutoff: when the year shows up deeper than this many characters
// into the cleaned name, everything after it is assumed to be release noise
// and is cut. Tunable heuristic inherited from field use, not an invariant.
const yearTailCutoff = 10

func compileAll(prefix string, patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(prefix + p)
	}
	return res
}

// ExtractTitleYear extracts a display title and a four digit year from a raw
// folder or file name. The returned title is empty when no trustworthy title
// remains after cleanup; the year may still be present in that case.
func ExtractTitleYear(name string) (title, year string) {
	clean := name

	lower := strings.ToLower(clean)
	for ext := range VideoExtensions {
		if strings.HasSuffix(lower, ext) {
			clean = clean[:len(clean)-len(ext)]
			break
		}
	}

	clean = strings.ReplaceAll(clean, ".", " ")
	clean = strings.ReplaceAll(clean, "_", " ")

	// Season/episode and collection phrases come out before year detection so
	// a numeric range like 1977-1985 is never mistaken for a year token.
	for _, re := range seasonPatterns {
		clean = re.ReplaceAllString(clean, " ")
	}
	for _, re := range collectionPatterns {
		clean = re.ReplaceAllString(clean, " ")
	}

	year = yearRe.FindString(clean)

	if year != "" {
		if pos := strings.Index(clean, year); pos > yearTailCutoff {
			clean = clean[:pos+len(year)]
		}
	}

	for _, re := range releasePatterns {
		clean = re.ReplaceAllString(clean, " ")
	}
	for _, re := range endOnlyPatterns {
		clean = re.ReplaceAllString(clean, " ")
	}

	clean = leadingTagRe.ReplaceAllString(clean, "")

	title = yearRe.ReplaceAllString(clean, "")
	title = multiSpaceRe.ReplaceAllString(title, " ")
	title = strings.TrimSpace(disallowedRe.ReplaceAllString(title, ""))
	title = strings.TrimSpace(multiSpaceRe.ReplaceAllString(title, " "))
	title = edgeHyphenRe.ReplaceAllString(title, "")

	if utf8.RuneCountInString(title) < 2 {
		return "", year
	}
	return title, year
}

// IsCryptic reports whether a file name is too obfuscated to be a useful
// identification source (scene scheme like "abc-title-group", or fewer than
// two real words). Cryptic files should defer to their parent folder name.
func IsCryptic(fileName string) bool {
	stem := fileName
	if idx := strings.LastIndex(stem, "."); idx > 0 {
		stem = stem[:idx]
	}

	if crypticStemRe.MatchString(stem) {
		return true
	}
	return len(alphaRunRe.FindAllString(stem, -1)) < 2
}

// MatchesCollectionPhrase reports whether a folder name carries an explicit
// collection marker (phrase or year range).
func MatchesCollectionPhrase(name string) bool {
	for _, re := range collectionPatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// HasSeasonCue reports whether a folder name hints at series content.
func HasSeasonCue(name string) bool {
	return seasonCueRe.MatchString(name)
}
