package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieDetails(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"api_key":  r.URL.Query().Get("api_key"),
			"language": r.URL.Query().Get("language"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"release_date": "2023-07-19",
			"poster_path": "/poster.jpg",
			"overview": "a synopsis",
			"backdrop_path": "/backdrop.jpg"
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key", "fr")
	details, err := c.MovieDetails(context.Background(), 872585)
	require.NoError(t, err)

	assert.Equal(t, "/movie/872585", gotPath)
	assert.Equal(t, "secret-key", gotQuery["api_key"])
	assert.Equal(t, "fr", gotQuery["language"])

	assert.Equal(t, "2023-07-19", details.ReleasedDate)
	assert.Equal(t, "/poster.jpg", details.PosterPath)
	assert.Equal(t, "a synopsis", details.Synopsis)
	assert.Equal(t, "/backdrop.jpg", details.BackdropPath)
	assert.Empty(t, details.Director)
}

func TestTVDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1396", r.URL.Path)
		w.Write([]byte(`{
			"first_air_date": "2008-01-20",
			"poster_path": "/p.jpg",
			"overview": "tv synopsis",
			"created_by": [{"name": "Vince Gilligan"}, {"name": "Someone Else"}]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "en")
	details, err := c.TVDetails(context.Background(), 1396)
	require.NoError(t, err)

	// First air date stands in for the release date, the first creator for
	// the director.
	assert.Equal(t, "2008-01-20", details.ReleasedDate)
	assert.Equal(t, "Vince Gilligan", details.Director)
}

func TestTVDetails_NoCreator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"first_air_date": "2020-01-01", "created_by": []}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "en")
	details, err := c.TVDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, details.Director)
	assert.Equal(t, "2020-01-01", details.ReleasedDate)
}

func TestSearchMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "oppenheimer", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{"page": 2, "results": [{"id": 872585}], "total_results": 1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "fr")
	raw, err := c.SearchMovies(context.Background(), "oppenheimer", 2)
	require.NoError(t, err)

	// The provider body passes through untouched.
	var payload struct {
		Page    int `json:"page"`
		Results []struct {
			ID int64 `json:"id"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, 2, payload.Page)
	require.Len(t, payload.Results, 1)
	assert.Equal(t, int64(872585), payload.Results[0].ID)
}

func TestSearchMovies_NoPageParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("page"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "fr")
	_, err := c.SearchMovies(context.Background(), "dune", 0)
	require.NoError(t, err)
}

func TestNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "bad", "fr")
	_, err := c.MovieDetails(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
