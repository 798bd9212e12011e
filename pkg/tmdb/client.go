// Package tmdb is the catalog client: it queries the remote movie API,
// normalizes untrusted payloads into domain records, and falls back to the
// response cache when a fetch fails.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cinepick/cinepick/pkg/cache"
	"github.com/cinepick/cinepick/pkg/config"
	"github.com/cinepick/cinepick/pkg/models"
)

// Client talks to the TMDB v3 API.
type Client struct {
	apiKey       string
	readToken    string
	baseURL      string
	imageBaseURL string
	language     string

	httpClient *http.Client
	cache      *cache.Cache
}

// New creates a Client from cfg, writing and falling back through c.
func New(cfg config.TMDBConfig, c *cache.Cache) *Client {
	return &Client{
		apiKey:       cfg.APIKey,
		readToken:    cfg.ReadToken,
		baseURL:      cfg.BaseURL,
		imageBaseURL: cfg.ImageBaseURL,
		language:     cfg.Language,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		cache:        c,
	}
}

// SearchMovies runs a keyword search and returns one normalized result
// page.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*models.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	key := fmt.Sprintf("search:%s:%d", query, page)
	data, err := c.fetchJSON(ctx, "search/movie", params, key)
	if err != nil {
		return nil, err
	}
	return normalizeSearchResult(data, page, c.imageBaseURL), nil
}

// Trending returns one normalized page of this week's trending movies.
func (c *Client) Trending(ctx context.Context, page int) (*models.SearchResult, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	key := fmt.Sprintf("trending:%d", page)
	data, err := c.fetchJSON(ctx, "trending/movie/week", params, key)
	if err != nil {
		return nil, err
	}
	return normalizeSearchResult(data, page, c.imageBaseURL), nil
}

// GetMovieDetail fetches a movie with its credits, videos and reviews in a
// single round trip. Absent nested collections normalize to empty.
func (c *Client) GetMovieDetail(ctx context.Context, movieID int) (*models.MovieDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,reviews")

	key := fmt.Sprintf("movie:%d", movieID)
	data, err := c.fetchJSON(ctx, fmt.Sprintf("movie/%d", movieID), params, key)
	if err != nil {
		return nil, err
	}
	return normalizeMovieDetail(data, c.imageBaseURL), nil
}

// PickTrailer returns the first YouTube trailer in videos, or nil. Pure,
// no I/O.
func PickTrailer(videos []models.Video) *models.Video {
	for i := range videos {
		if videos[i].Site == "YouTube" && videos[i].Type == "Trailer" {
			return &videos[i]
		}
	}
	return nil
}

// fetchJSON performs the remote request, caching the raw payload on
// success. On any failure it falls back to a fresh cache entry for the
// same key; without one the original failure propagates. A single fallback
// attempt, never a retry loop.
func (c *Client) fetchJSON(ctx context.Context, path string, params url.Values, cacheKey string) (map[string]any, error) {
	data, err := c.fetchRemote(ctx, path, params)
	if err == nil {
		c.cache.Set(cacheKey, data)
		return data, nil
	}

	var cached map[string]any
	if c.cache.Get(cacheKey, &cached) {
		return cached, nil
	}
	return nil, err
}

func (c *Client) fetchRemote(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.readToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.readToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    extractStatusMessage(body),
		}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return data, nil
}

// extractStatusMessage pulls the structured error message out of a
// non-success body, or the generic fallback when none is present.
func extractStatusMessage(body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.StatusMessage == "" {
		return genericFetchError
	}
	return payload.StatusMessage
}
