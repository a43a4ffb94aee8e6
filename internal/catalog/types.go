// Package catalog provides the TMDB metadata boundary: search, id lookup and
// IMDb cross-reference resolution. Callers treat every miss (network failure,
// not-found, malformed payload) uniformly as absence.
package catalog

// Kind selects the TMDB media namespace.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Candidate is one catalog record returned from a search or lookup.
// Immutable once constructed; IMDBID stays empty until resolved.
type Candidate struct {
	ID            int64
	IMDBID        string
	Title         string
	OriginalTitle string
	Year          string // four digits, possibly empty
	Kind          Kind
	Popularity    float64
}

// searchResponse models the paginated TMDB search payload.
type searchResponse struct {
	Page    int            `json:"page"`
	Results []searchResult `json:"results"`
}

// searchResult covers both the movie and TV result shapes; TMDB uses
// title/release_date for movies and name/first_air_date for TV.
type searchResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Name          string  `json:"name"`
	OriginalTitle string  `json:"original_title"`
	OriginalName  string  `json:"original_name"`
	ReleaseDate   string  `json:"release_date"`
	FirstAirDate  string  `json:"first_air_date"`
	Popularity    float64 `json:"popularity"`
}

// findResponse models the /find/{imdb_id} payload.
type findResponse struct {
	MovieResults []searchResult `json:"movie_results"`
	TVResults    []searchResult `json:"tv_results"`
}

// externalIDs models the /{kind}/{id}/external_ids payload.
type externalIDs struct {
	IMDBID string `json:"imdb_id"`
}

func (r searchResult) candidate(kind Kind) Candidate {
	title, original, date := r.Title, r.OriginalTitle, r.ReleaseDate
	if kind == KindTV {
		title, original, date = r.Name, r.OriginalName, r.FirstAirDate
	}
	year := ""
	if len(date) >= 4 {
		year = date[:4]
	}
	return Candidate{
		ID:            r.ID,
		Title:         title,
		OriginalTitle: original,
		Year:          year,
		Kind:          kind,
		Popularity:    r.Popularity,
	}
}
