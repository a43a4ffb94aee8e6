package namer

import (
	"regexp"
	"strconv"
)

// Episode identifies one episode within a season.
type Episode struct {
	Season  int
	Episode int
}

// episodePatterns in priority order: S01E02, S01.E02 / S01-E02, 1x02.
var episodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)S(\d{1,2})E(\d{1,3})`),
	regexp.MustCompile(`(?i)S(\d{1,2})[.\-\s]?E(\d{1,3})`),
	regexp.MustCompile(`(\d{1,2})[xX](\d{1,3})`),
}

// ParseEpisode extracts season/episode numbering from a name. The first
// matching pattern wins; nil means no episode numbering was found.
func ParseEpisode(name string) *Episode {
	for _, re := range episodePatterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		season, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		episode, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		return &Episode{Season: season, Episode: episode}
	}
	return nil
}
