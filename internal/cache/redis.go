// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"syahi/internal/observability"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var client *redis.Client

// Redis is optional, so a dead server must fail fast instead of stalling requests.
const (
	dialTimeout   = 250 * time.Millisecond
	dialerBackoff = 10 * time.Millisecond
	ioTimeout     = 250 * time.Millisecond
	maxRetries    = 1
)

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// NewClient builds a client from a plain host:port address or a redis:// URL.
func NewClient(addr string) (*redis.Client, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}
	opts.DialTimeout = dialTimeout
	opts.DialerRetries = 1
	opts.DialerRetryTimeout = dialerBackoff
	opts.ReadTimeout = ioTimeout
	opts.WriteTimeout = ioTimeout
	opts.PoolTimeout = dialTimeout + ioTimeout
	opts.MaxRetries = maxRetries

	c := redis.NewClient(opts)
	c.AddHook(metricsHook{})
	return c, nil
}

// InitRedis connects to addr and installs the client. Redis is optional: on
// any failure the application continues without a cache.
func InitRedis(addr string) *redis.Client {
	c, err := NewClient(addr)
	if err != nil {
		observability.Logger.Warn("invalid REDIS_URL, continuing without cache", zap.String("addr", addr), zap.Error(err))
		client = nil
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		observability.Logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
		_ = c.Close()
		client = nil
		return nil
	}

	observability.Logger.Info("Redis connected successfully")
	client = c
	return client
}

// SetClient installs c as the cache client. Passing nil disables caching.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the current Redis client instance.
func GetClient() *redis.Client {
	return client
}

// Close closes the installed client, if any.
func Close() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		observability.Logger.Warn("error closing redis", zap.Error(err))
	}
	client = nil
}
