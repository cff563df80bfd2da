// Package tmdb is a thin client for The Movie Database API, covering the
// handful of lookups the service proxies: movie details, TV details and
// movie search. No caching, no retries; failures surface to the caller.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	baseURL  string
	apiKey   string
	language string
	http     *http.Client
}

func New(baseURL, apiKey, language string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Details is the enrichment payload extracted from a TMDB details response.
// BackdropPath and Director are best effort: series expose a creator list,
// movies do not, and extraction failures leave the rest of the payload intact.
type Details struct {
	ReleasedDate string `json:"released_date"`
	PosterPath   string `json:"poster_path"`
	Synopsis     string `json:"synopsis"`
	BackdropPath string `json:"backdrop_path,omitempty"`
	Director     string `json:"director,omitempty"`
}

type detailsResponse struct {
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	PosterPath   string `json:"poster_path"`
	Overview     string `json:"overview"`
	BackdropPath string `json:"backdrop_path"`
	CreatedBy    []struct {
		Name string `json:"name"`
	} `json:"created_by"`
}

// MovieDetails fetches details for a movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*Details, error) {
	return c.details(ctx, "/movie/"+strconv.FormatInt(movieID, 10), false)
}

// TVDetails fetches details for a TV show. The release date comes from the
// first air date and the director from the show's creator list.
func (c *Client) TVDetails(ctx context.Context, movieID int64) (*Details, error) {
	return c.details(ctx, "/tv/"+strconv.FormatInt(movieID, 10), true)
}

func (c *Client) details(ctx context.Context, path string, tv bool) (*Details, error) {
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var raw detailsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("tmdb: decode details: %w", err)
	}

	details := &Details{
		PosterPath:   raw.PosterPath,
		Synopsis:     raw.Overview,
		BackdropPath: raw.BackdropPath,
	}
	if tv {
		details.ReleasedDate = raw.FirstAirDate
	} else {
		details.ReleasedDate = raw.ReleaseDate
	}

	if len(raw.CreatedBy) > 0 {
		details.Director = raw.CreatedBy[0].Name
	} else if tv {
		log.Println("tmdb: no creator listed for", path)
	}

	return details, nil
}

// SearchMovies runs a movie title search and returns the provider response
// verbatim, as the endpoint is a passthrough.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	return c.get(ctx, "/search/movie", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: read response %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb: %s returned status %d", path, resp.StatusCode)
	}

	return body, nil
}
