package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *catalog.TMDB {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.NewTMDB("test-token",
		catalog.WithBaseURL(srv.URL),
		catalog.WithRetryBackoff(time.Millisecond),
	)
}

func TestTMDB_SearchMovie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "Alien", q.Get("query"))
		assert.Equal(t, "1979", q.Get("year"))
		assert.Equal(t, "de-DE", q.Get("language"))
		assert.Equal(t, "false", q.Get("include_adult"))

		fmt.Fprint(w, `{"page":1,"results":[
			{"id":348,"title":"Alien","original_title":"Alien","release_date":"1979-05-25","popularity":52.1},
			{"id":8077,"title":"Alien³","original_title":"Alien³","release_date":"1992-05-22","popularity":30.0}
		]}`)
	})

	got, err := client.Search(context.Background(), catalog.KindMovie, "Alien", "1979")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(348), got[0].ID)
	assert.Equal(t, "Alien", got[0].Title)
	assert.Equal(t, "1979", got[0].Year)
	assert.Equal(t, catalog.KindMovie, got[0].Kind)
	assert.Empty(t, got[0].IMDBID, "IMDb id stays unresolved at search time")
}

func TestTMDB_SearchTV(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "2008", r.URL.Query().Get("first_air_date_year"))

		fmt.Fprint(w, `{"page":1,"results":[
			{"id":1396,"name":"Breaking Bad","original_name":"Breaking Bad","first_air_date":"2008-01-20","popularity":200.5}
		]}`)
	})

	got, err := client.Search(context.Background(), catalog.KindTV, "Breaking Bad", "2008")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Breaking Bad", got[0].Title)
	assert.Equal(t, "2008", got[0].Year)
	assert.Equal(t, catalog.KindTV, got[0].Kind)
}

func TestTMDB_SearchCachesResponses(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"page":1,"results":[{"id":1,"title":"X Y","release_date":"2000-01-01"}]}`)
	})

	ctx := context.Background()
	_, err := client.Search(ctx, catalog.KindMovie, "X Y", "2000")
	require.NoError(t, err)
	_, err = client.Search(ctx, catalog.KindMovie, "X Y", "2000")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "identical requests must hit the cache")
}

func TestTMDB_RetriesOnceOnRateLimit(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"page":1,"results":[{"id":1,"title":"Movie","release_date":"2000-01-01"}]}`)
	})

	got, err := client.Search(context.Background(), catalog.KindMovie, "Movie", "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, calls)
}

func TestTMDB_GivesUpAfterSecondRateLimit(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), catalog.KindMovie, "Movie", "")
	assert.ErrorIs(t, err, catalog.ErrRateLimited)
	assert.Equal(t, 2, calls, "exactly one retry")
}

func TestTMDB_ExternalID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/348/external_ids", r.URL.Path)
		fmt.Fprint(w, `{"imdb_id":"tt0078748"}`)
	})

	id, err := client.ExternalID(context.Background(), 348, catalog.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, "tt0078748", id)
}

func TestTMDB_ExternalID_NotFoundIsAbsence(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	id, err := client.ExternalID(context.Background(), 999999, catalog.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestTMDB_FetchByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		fmt.Fprint(w, `{"id":603,"title":"Matrix","original_title":"The Matrix","release_date":"1999-03-30","popularity":80.0}`)
	})

	got, err := client.FetchByID(context.Background(), 603, catalog.KindMovie)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Matrix", got.Title)
	assert.Equal(t, "1999", got.Year)
}

func TestTMDB_FetchByID_NotFoundIsAbsence(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	got, err := client.FetchByID(context.Background(), 1, catalog.KindMovie)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTMDB_FetchByExternalID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/find/tt0078748", r.URL.Path)
		assert.Equal(t, "imdb_id", r.URL.Query().Get("external_source"))
		fmt.Fprint(w, `{
			"movie_results":[{"id":348,"title":"Alien","release_date":"1979-05-25"}],
			"tv_results":[{"id":999,"name":"Alien Show","first_air_date":"2001-01-01"}]
		}`)
	})

	got, err := client.FetchByExternalID(context.Background(), "tt0078748")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, catalog.KindMovie, got.Kind, "movie results win over tv results")
	assert.Equal(t, "tt0078748", got.IMDBID)
}

func TestTMDB_Verify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/configuration", r.URL.Path)
		fmt.Fprint(w, `{"images":{"base_url":"http://image.tmdb.org/t/p/"}}`)
	})
	assert.NoError(t, client.Verify(context.Background()))
}

func TestTMDB_VerifyRejectsUnexpectedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status_message":"nope"}`)
	})
	assert.Error(t, client.Verify(context.Background()))
}
