// Package middleware provides request-scoped Fiber middleware for the application.
package middleware

import (
	"context"
	"time"

	"syahi/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContextMiddleware injects request ID and trace ID from Fiber locals into the
// request context so the context-aware logger picks them up in deeper layers.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ctx = context.WithValue(ctx, observability.RequestIDKey, rid)
		}
		if uid, ok := c.Locals("userID").(string); ok && uid != "" {
			ctx = context.WithValue(ctx, observability.UserIDKey, uid)
		}
		if tid, ok := c.Locals("traceID").(string); ok && tid != "" {
			ctx = context.WithValue(ctx, observability.TraceIDKey, tid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// StructuredLogger returns a Fiber middleware logging one line per request with zap.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Response().StatusCode()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if uid, ok := c.Locals("userID").(string); ok && uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}

		logger := observability.FromContext(c.UserContext())
		if err != nil {
			fields = append(fields, zap.Error(err))
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request processed", fields...)
		}

		return err
	}
}
