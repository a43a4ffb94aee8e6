package match

import (
	"context"
	"log/slog"
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
	"github.com/kommerzienrat/tmdb-rename/internal/namer"
)

const (
	// maxCollected stops variant querying once this many distinct candidates
	// have been accumulated.
	maxCollected = 8

	// maxRanked caps the final ranked list.
	maxRanked = 10

	// eagerExternalIDs is how many top candidates get their IMDb id resolved
	// up front; the call is expensive and deferred for the rest.
	eagerExternalIDs = 3
)

// Candidate is a ranked catalog record, annotated with the Jaro-Winkler
// similarity between its title and the extracted title.
type Candidate struct {
	catalog.Candidate
	Similarity float64
}

// Ranker queries the catalog across query variants and orders the results.
type Ranker struct {
	client catalog.Client
	logger *slog.Logger
}

// NewRanker creates a Ranker. A nil logger falls back to slog.Default.
func NewRanker(client catalog.Client, logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{client: client, logger: logger}
}

// Rank searches the catalog for an extracted title and returns the ranked
// candidate list. Catalog failures degrade to missing data; the result may
// be empty but Rank never fails.
func (r *Ranker) Rank(ctx context.Context, title, year string, kind catalog.Kind) []Candidate {
	var ranked []Candidate
	seen := make(map[int64]bool)

	for _, v := range GenerateVariants(title, year) {
		if len(ranked) >= maxCollected {
			break
		}

		found, err := r.client.Search(ctx, kind, v.Query, v.Year)
		if err != nil {
			r.logger.Debug("catalog search failed", "query", v.Query, "error", err)
			continue
		}

		for _, c := range found {
			if c.ID == 0 || seen[c.ID] {
				continue
			}
			seen[c.ID] = true

			if len(ranked) < eagerExternalIDs {
				imdbID, err := r.client.ExternalID(ctx, c.ID, kind)
				if err != nil {
					r.logger.Debug("external id lookup failed", "id", c.ID, "error", err)
				}
				c.IMDBID = imdbID
			}

			ranked = append(ranked, Candidate{
				Candidate:  c,
				Similarity: titleSimilarity(title, c),
			})
		}
	}

	// Year matches sort ahead of everything else; popularity breaks ties and
	// is the sole key when no year was extracted.
	sort.SliceStable(ranked, func(i, j int) bool {
		if year != "" {
			im, jm := ranked[i].Year == year, ranked[j].Year == year
			if im != jm {
				return im
			}
		}
		return ranked[i].Popularity > ranked[j].Popularity
	})

	if len(ranked) > maxRanked {
		ranked = ranked[:maxRanked]
	}
	return ranked
}

// Classify derives the identification status from a ranked result. A single
// candidate whose year equals the extracted year is safe to act on
// automatically; anything else needs a human.
func Classify(ranked []Candidate, year string) Status {
	switch {
	case len(ranked) == 0:
		return StatusNone
	case len(ranked) == 1 && year != "" && ranked[0].Year == year:
		return StatusAutomatic
	default:
		return StatusUncertain
	}
}

// titleSimilarity scores how close a candidate is to the extracted title,
// taking the better of display and original title.
func titleSimilarity(extracted string, c catalog.Candidate) float64 {
	key := namer.NormalizeTitle(extracted)
	best := float64(edlib.JaroWinklerSimilarity(key, namer.NormalizeTitle(c.Title)))
	if c.OriginalTitle != "" && c.OriginalTitle != c.Title {
		if s := float64(edlib.JaroWinklerSimilarity(key, namer.NormalizeTitle(c.OriginalTitle))); s > best {
			best = s
		}
	}
	return best
}
