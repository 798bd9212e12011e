package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/cinepick/cinepick/pkg/cache"
	"github.com/cinepick/cinepick/pkg/config"
	"github.com/cinepick/cinepick/pkg/storage/sqlite"
)

func newTestClient(t *testing.T, upstream *httptest.Server) *Client {
	t.Helper()
	kv, err := sqlite.New(filepath.Join(t.TempDir(), "client_test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	cfg := config.TMDBConfig{
		APIKey:       "test-key",
		ReadToken:    "test-token",
		BaseURL:      upstream.URL,
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		Language:     "zh-CN",
	}
	return New(cfg, cache.New(kv, cache.DefaultTTL))
}

func TestSearchMovies(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Error("expected api_key query parameter")
		}
		if q.Get("query") != "dune" || q.Get("page") != "2" {
			t.Errorf("unexpected query params: %v", q)
		}
		if q.Get("include_adult") != "false" || q.Get("language") != "zh-CN" {
			t.Errorf("unexpected fixed params: %v", q)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Error("expected bearer token header")
		}
		w.Write([]byte(`{"page":2,"total_pages":5,"results":[{"id":438631,"title":"沙丘","vote_average":7.8,"poster_path":"/d.jpg"}]}`))
	}))
	defer upstream.Close()

	c := newTestClient(t, upstream)

	res, err := c.SearchMovies(context.Background(), "dune", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Page != 2 || res.TotalPages != 5 {
		t.Errorf("unexpected paging: %+v", res)
	}
	if len(res.Results) != 1 || res.Results[0].Title != "沙丘" {
		t.Errorf("unexpected results: %+v", res.Results)
	}
	if res.Results[0].PosterURL != "https://image.tmdb.org/t/p/w500/d.jpg" {
		t.Errorf("unexpected poster url: %s", res.Results[0].PosterURL)
	}
}

func TestTrendingPageFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// Payload without page counters: they fall back to the request.
		w.Write([]byte(`{"results":[]}`))
	}))
	defer upstream.Close()

	c := newTestClient(t, upstream)

	res, err := c.Trending(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Page != 3 || res.TotalPages != 3 {
		t.Errorf("expected paging fallback to 3, got %+v", res)
	}
}

func TestGetMovieDetail(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/27205" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != "credits,videos,reviews" {
			t.Error("expected appended associations in one round trip")
		}
		w.Write([]byte(`{
			"id": 27205, "title": "盗梦空间", "runtime": 148,
			"credits": {"crew": [{"job":"Director","name":"Christopher Nolan"}]},
			"videos": {"results": [{"id":"v","key":"k","site":"YouTube","name":"t","type":"Trailer"}]}
		}`))
	}))
	defer upstream.Close()

	c := newTestClient(t, upstream)

	d, err := c.GetMovieDetail(context.Background(), 27205)
	if err != nil {
		t.Fatal(err)
	}
	if d.Title != "盗梦空间" || d.Runtime != 148 {
		t.Errorf("unexpected detail: %+v", d)
	}
	if len(d.Directors) != 1 || d.Directors[0] != "Christopher Nolan" {
		t.Errorf("unexpected directors: %v", d.Directors)
	}
	if tr := PickTrailer(d.Videos); tr == nil || tr.Key != "k" {
		t.Errorf("expected trailer, got %+v", tr)
	}
	// Absent reviews normalize to empty.
	if d.Reviews == nil || len(d.Reviews) != 0 {
		t.Errorf("unexpected reviews: %v", d.Reviews)
	}
}

func TestCacheFallbackAfterFailure(t *testing.T) {
	var fail atomic.Bool
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status_message":"Internal error"}`))
			return
		}
		w.Write([]byte(`{"page":1,"total_pages":1,"results":[{"id":603,"title":"黑客帝国"}]}`))
	}))
	defer upstream.Close()

	c := newTestClient(t, upstream)

	// First call succeeds and populates the cache.
	if _, err := c.SearchMovies(context.Background(), "matrix", 1); err != nil {
		t.Fatal(err)
	}

	// Second call fails upstream but serves the cached payload.
	fail.Store(true)
	res, err := c.SearchMovies(context.Background(), "matrix", 1)
	if err != nil {
		t.Fatalf("expected cache fallback, got %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].Title != "黑客帝国" {
		t.Errorf("unexpected fallback results: %+v", res.Results)
	}

	// A different key has no cache entry: the failure propagates.
	_, err = c.SearchMovies(context.Background(), "matrix", 2)
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.StatusCode != http.StatusInternalServerError || re.Message != "Internal error" {
		t.Errorf("unexpected remote error: %+v", re)
	}
}

func TestRemoteErrorGenericMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	c := newTestClient(t, upstream)

	_, err := c.Trending(context.Background(), 1)
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.Message != "无法获取数据" {
		t.Errorf("expected generic message, got %q", re.Message)
	}
	if IsNetworkError(err) {
		t.Error("remote error must not classify as network error")
	}
}

func TestNetworkErrorClass(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, upstream)
	upstream.Close() // connection refused from here on

	_, err := c.SearchMovies(context.Background(), "dune", 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNetworkError(err) {
		t.Errorf("expected network-class error, got %v", err)
	}
}
