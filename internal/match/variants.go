package match

import (
	"regexp"
	"strings"

	"github.com/kommerzienrat/tmdb-rename/internal/namer"
)

// Variant is one search query attempt against the catalog.
type Variant struct {
	Query string
	Year  string // empty means unconstrained
}

var andWordRe = regexp.MustCompile(`\s+[Aa]nd\s+`)

// GenerateVariants expands an extracted title into the ordered, deduplicated
// list of search queries to try. Exact spellings come first; progressively
// looser rewrites (umlaut spelling, "and"→"&", word truncations, the part
// before a " - " separator) follow. Earlier variants are always queried
// before later ones.
func GenerateVariants(title, year string) []Variant {
	variants := []Variant{
		{Query: title, Year: year},
		{Query: title, Year: ""},
	}

	if umlaut := namer.ToUmlauts(title); umlaut != title {
		variants = append(variants,
			Variant{Query: umlaut, Year: year},
			Variant{Query: umlaut, Year: ""},
		)
	}

	if strings.Contains(title, " And ") || strings.Contains(title, " and ") {
		amp := andWordRe.ReplaceAllString(title, " & ")
		variants = append(variants,
			Variant{Query: amp, Year: year},
			Variant{Query: amp, Year: ""},
		)
	}

	words := strings.Fields(title)
	if len(words) > 3 {
		variants = append(variants,
			Variant{Query: strings.Join(words[:2], " "), Year: year},
			Variant{Query: strings.Join(words[:3], " "), Year: year},
		)
	}

	if strings.Contains(title, " - ") {
		main := strings.TrimSpace(strings.SplitN(title, " - ", 2)[0])
		if len(main) > 3 {
			variants = append(variants, Variant{Query: main, Year: year})
		}
	}

	seen := make(map[Variant]bool, len(variants))
	unique := variants[:0]
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique
}
