// Package music searches an external catalogue for tracks to attach to bouquets.
package music

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrUnavailable wraps every upstream, breaker or throttling failure.
var ErrUnavailable = errors.New("music search unavailable")

// Searcher finds tracks matching a free-text term.
type Searcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.MusicData, error)
}

// Config controls the upstream client.
type Config struct {
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
	// MaxFailures consecutive failures open the breaker for OpenTimeout.
	MaxFailures uint32
	OpenTimeout time.Duration
	HTTPClient  *http.Client
}

// Client talks to an iTunes Search compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker
}

type searchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackName     string `json:"trackName"`
		ArtistName    string `json:"artistName"`
		PreviewURL    string `json:"previewUrl"`
		ArtworkURL100 string `json:"artworkUrl100"`
	} `json:"results"`
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	burst := int(cfg.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	maxFailures := cfg.MaxFailures
	st := gobreaker.Settings{
		Name:        "music-search",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			observability.Logger.Info("circuit breaker state",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		cb:      gobreaker.NewCircuitBreaker(st),
	}
}

// Search returns up to limit tracks for term, served from cache when possible.
func (c *Client) Search(ctx context.Context, term string, limit int) ([]models.MusicData, error) {
	term = strings.TrimSpace(term)

	var tracks []models.MusicData
	err := cache.Aside(ctx, cache.MusicSearchKey(term, limit), &tracks, cache.MusicSearchTTL, func() error {
		fetched, err := c.search(ctx, term, limit)
		if err != nil {
			return err
		}
		tracks = fetched
		return nil
	})
	if err != nil {
		observability.MusicSearches.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.MusicSearches.WithLabelValues("ok").Inc()
	if tracks == nil {
		tracks = []models.MusicData{}
	}
	return tracks, nil
}

func (c *Client) search(ctx context.Context, term string, limit int) ([]models.MusicData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetch(ctx, term, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return res.([]models.MusicData), nil
}

func (c *Client) fetch(ctx context.Context, term string, limit int) (tracks []models.MusicData, err error) {
	ctx, span := observability.StartClientSpan(ctx, "music.search",
		attribute.String("music.term", term),
		attribute.Int("music.limit", limit),
	)
	defer func() { observability.EndSpan(span, err) }()

	q := url.Values{}
	q.Set("term", term)
	q.Set("media", "music")
	q.Set("entity", "song")
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	tracks = make([]models.MusicData, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.TrackName == "" {
			continue
		}
		tracks = append(tracks, models.MusicData{
			Title:      r.TrackName,
			Artist:     r.ArtistName,
			PreviewURL: r.PreviewURL,
			ArtworkURL: r.ArtworkURL100,
		})
	}
	return tracks, nil
}
