package music

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"syahi/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itunesBody = `{"resultCount":2,"results":[
 {"trackName":"Kun Faya Kun","artistName":"A. R. Rahman","previewUrl":"https://p/1.m4a","artworkUrl100":"https://a/1.jpg"},
 {"trackName":"","artistName":"nobody"},
 {"trackName":"Tum Hi Ho","artistName":"Arijit Singh","previewUrl":"https://p/2.m4a","artworkUrl100":"https://a/2.jpg"}
]}`

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:           baseURL,
		RequestsPerSecond: 1000,
		MaxFailures:       3,
		OpenTimeout:       time.Minute,
	})
}

func TestSearch_MapsResults(t *testing.T) {
	cache.SetClient(nil)

	var gotQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, itunesBody)
	}))
	defer srv.Close()

	tracks, err := newTestClient(srv.URL).Search(context.Background(), "  sufi ", 5)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Kun Faya Kun", tracks[0].Title)
	assert.Equal(t, "A. R. Rahman", tracks[0].Artist)
	assert.Equal(t, "https://p/1.m4a", tracks[0].PreviewURL)
	assert.Equal(t, "https://a/2.jpg", tracks[1].ArtworkURL)

	q := gotQuery.Load().(url.Values)
	assert.Equal(t, []string{"sufi"}, q["term"])
	assert.Equal(t, []string{"music"}, q["media"])
	assert.Equal(t, []string{"song"}, q["entity"])
	assert.Equal(t, []string{"5"}, q["limit"])
}

func TestSearch_UpstreamFailureIsUnavailable(t *testing.T) {
	cache.SetClient(nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "ghazal", 5)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestSearch_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	cache.SetClient(nil)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	for i := 0; i < 6; i++ {
		_, err := c.Search(context.Background(), fmt.Sprintf("q%d", i), 5)
		assert.True(t, errors.Is(err, ErrUnavailable))
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestSearch_CachedResultsSkipUpstream(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.SetClient(nil)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, itunesBody)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	for i := 0; i < 3; i++ {
		tracks, err := c.Search(context.Background(), "Sufi", 5)
		require.NoError(t, err)
		assert.Len(t, tracks, 2)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSearch_CancelledContext(t *testing.T) {
	cache.SetClient(nil)

	c := NewClient(Config{BaseURL: "http://127.0.0.1:0", RequestsPerSecond: 0.001})
	// Drain the single burst token so the next call must wait.
	require.True(t, c.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Search(ctx, "anything", 5)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
