package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"
const defaultLanguage = "de-DE"
const defaultRetryBackoff = 2 * time.Second

// ErrNotFound is returned when a record doesn't exist in the catalog.
var ErrNotFound = errors.New("catalog record not found")

// ErrRateLimited is returned when the catalog rejects a request with a
// rate-limit response even after the single retry.
var ErrRateLimited = errors.New("catalog rate limit exceeded")

// Client is the catalog boundary the identification core depends on. All
// methods report absence as (nil, nil) / ("", nil); errors are transport
// failures the caller is free to absorb.
type Client interface {
	// Search returns catalog candidates for a query, optionally constrained
	// to a release year.
	Search(ctx context.Context, kind Kind, query, year string) ([]Candidate, error)

	// ExternalID resolves the IMDb id for a catalog record.
	ExternalID(ctx context.Context, id int64, kind Kind) (string, error)

	// FetchByID fetches one record directly by catalog id.
	FetchByID(ctx context.Context, id int64, kind Kind) (*Candidate, error)

	// FetchByExternalID fetches one record by IMDb id.
	FetchByExternalID(ctx context.Context, imdbID string) (*Candidate, error)

	// Verify checks that the API is reachable with the configured token.
	Verify(ctx context.Context) error
}

// TMDB is the Client implementation backed by The Movie Database.
type TMDB struct {
	token        string
	baseURL      string
	language     string
	httpClient   *http.Client
	cache        *cache
	retryBackoff time.Duration
}

var _ Client = (*TMDB)(nil)

// Option configures a TMDB client.
type Option func(*TMDB)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *TMDB) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *TMDB) {
		c.httpClient = hc
	}
}

// WithLanguage sets the result language (default de-DE).
func WithLanguage(lang string) Option {
	return func(c *TMDB) {
		c.language = lang
	}
}

// WithRetryBackoff sets the wait before the single rate-limit retry.
func WithRetryBackoff(d time.Duration) Option {
	return func(c *TMDB) {
		c.retryBackoff = d
	}
}

// NewTMDB creates a TMDB client using the given v4 read access token.
func NewTMDB(token string, opts ...Option) *TMDB {
	c := &TMDB{
		token:    token,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache:        newCache(),
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get executes a cached GET against the API and decodes the payload into out.
func (c *TMDB) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	if body, ok := c.cache.get(reqURL); ok {
		return json.Unmarshal(body, out)
	}

	body, err := c.fetch(ctx, reqURL, true)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	c.cache.set(reqURL, body)
	return nil
}

func (c *TMDB) fetch(ctx context.Context, reqURL string, retryOnLimit bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		if !retryOnLimit {
			return nil, ErrRateLimited
		}
		// One fixed-backoff retry, then give up.
		select {
		case <-time.After(c.retryBackoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return c.fetch(ctx, reqURL, false)
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("catalog API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// Search implements Client.
func (c *TMDB) Search(ctx context.Context, kind Kind, query, year string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("language", c.language)
	params.Set("include_adult", "false")
	if year != "" {
		if kind == KindTV {
			params.Set("first_air_date_year", year)
		} else {
			params.Set("year", year)
		}
	}

	var resp searchResponse
	if err := c.get(ctx, "/search/"+string(kind), params, &resp); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, r.candidate(kind))
	}
	return candidates, nil
}

// ExternalID implements Client. An absent IMDb id is ("", nil).
func (c *TMDB) ExternalID(ctx context.Context, id int64, kind Kind) (string, error) {
	var ids externalIDs
	err := c.get(ctx, fmt.Sprintf("/%s/%d/external_ids", kind, id), nil, &ids)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return ids.IMDBID, nil
}

// FetchByID implements Client. A missing record is (nil, nil).
func (c *TMDB) FetchByID(ctx context.Context, id int64, kind Kind) (*Candidate, error) {
	params := url.Values{}
	params.Set("language", c.language)

	var r searchResult
	err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), params, &r)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if r.ID == 0 {
		return nil, nil
	}
	cand := r.candidate(kind)
	return &cand, nil
}

// FetchByExternalID implements Client. Movie results win over TV results
// when an IMDb id maps to both.
func (c *TMDB) FetchByExternalID(ctx context.Context, imdbID string) (*Candidate, error) {
	params := url.Values{}
	params.Set("external_source", "imdb_id")

	var resp findResponse
	err := c.get(ctx, "/find/"+imdbID, params, &resp)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cand Candidate
	switch {
	case len(resp.MovieResults) > 0:
		cand = resp.MovieResults[0].candidate(KindMovie)
	case len(resp.TVResults) > 0:
		cand = resp.TVResults[0].candidate(KindTV)
	default:
		return nil, nil
	}
	cand.IMDBID = imdbID
	return &cand, nil
}

// Verify implements Client.
func (c *TMDB) Verify(ctx context.Context) error {
	var cfg struct {
		Images map[string]any `json:"images"`
	}
	if err := c.get(ctx, "/configuration", nil, &cfg); err != nil {
		return err
	}
	if cfg.Images == nil {
		return errors.New("unexpected configuration payload")
	}
	return nil
}
