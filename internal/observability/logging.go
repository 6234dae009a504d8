// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger. It is a no-op until NewLogger runs.
var Logger = zap.NewNop()

// ContextKey is a type for context keys used by the logging package.
type ContextKey string

// Context keys picked up by FromContext.
const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	TraceIDKey   ContextKey = "trace_id"
)

// NewLogger builds a JSON logger for production and a console logger
// elsewhere, installs it as Logger and returns it.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" || env == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	Logger = logger
	return logger, nil
}

// SetLogger replaces the process-wide logger. Tests use it with zaptest or zap.NewNop.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Logger = l
}

// FromContext returns Logger enriched with the request-scoped values found in ctx.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Logger
	}
	fields := make([]zap.Field, 0, 3)
	if rid, ok := ctx.Value(RequestIDKey).(string); ok && rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid, ok := ctx.Value(UserIDKey).(string); ok && uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}
	if tid, ok := ctx.Value(TraceIDKey).(string); ok && tid != "" {
		fields = append(fields, zap.String("trace_id", tid))
	}
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
