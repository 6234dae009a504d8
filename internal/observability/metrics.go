package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syahi_redis_errors_total",
		Help: "Total number of Redis errors by operation",
	}, []string{"operation"})

	// ContentCreated counts documents created by kind.
	ContentCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syahi_content_created_total",
		Help: "Total number of documents created by kind",
	}, []string{"kind"})

	// LikesToggled counts like toggles by kind and resulting action.
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syahi_likes_toggled_total",
		Help: "Total number of like toggles by kind and action",
	}, []string{"kind", "action"})

	// MusicSearches counts outbound music searches by result.
	MusicSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syahi_music_search_total",
		Help: "Total number of music searches by result",
	}, []string{"result"})

	// StoreQueryLatency records repository latency by backend and operation.
	StoreQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "syahi_store_query_latency_seconds",
		Help:    "Store query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation"})
)
