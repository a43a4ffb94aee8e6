package match

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
	"github.com/kommerzienrat/tmdb-rename/internal/namer"
)

// ErrInvalidID rejects a manual override identifier before any network call.
var ErrInvalidID = errors.New("invalid identifier")

var allDigitsRe = regexp.MustCompile(`^\d+$`)

// Lookup resolves a manual override identifier directly against the catalog.
// Accepted inputs: an IMDb id ("tt0133093", or its bare digits when at least
// 7 long) or a raw numeric catalog id. Numeric catalog ids are tried as a
// movie first and fall back to series; an id that exists as both resolves to
// the movie, so series overrides should prefer the IMDb form.
// A nil, nil return means the id is well-formed but unknown to the catalog.
func (r *Ranker) Lookup(ctx context.Context, input string) (*Candidate, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrInvalidID
	}

	isDigits := allDigitsRe.MatchString(input)

	if strings.HasPrefix(input, "tt") || (isDigits && len(input) >= 7) {
		id := input
		if !strings.HasPrefix(id, "tt") {
			id = "tt" + id
		}
		if !namer.ValidIMDBLookupID(id) {
			return nil, ErrInvalidID
		}

		c, err := r.client.FetchByExternalID(ctx, id)
		if err != nil {
			r.logger.Debug("external id fetch failed", "id", id, "error", err)
			return nil, nil
		}
		if c == nil {
			return nil, nil
		}
		return &Candidate{Candidate: *c, Similarity: 1}, nil
	}

	if !isDigits {
		return nil, ErrInvalidID
	}

	catalogID, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return nil, ErrInvalidID
	}

	for _, kind := range []catalog.Kind{catalog.KindMovie, catalog.KindTV} {
		c, err := r.client.FetchByID(ctx, catalogID, kind)
		if err != nil {
			r.logger.Debug("catalog fetch failed", "id", catalogID, "kind", kind, "error", err)
			continue
		}
		if c == nil {
			continue
		}
		imdbID, err := r.client.ExternalID(ctx, c.ID, kind)
		if err != nil {
			r.logger.Debug("external id lookup failed", "id", c.ID, "error", err)
		}
		c.IMDBID = imdbID
		return &Candidate{Candidate: *c, Similarity: 1}, nil
	}
	return nil, nil
}
