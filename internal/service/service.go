// Package service holds the business rules applied between HTTP handlers and repositories.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"

	"go.uber.org/zap"
)

// Author identifies the authenticated caller acting on a document.
type Author struct {
	ID       string
	Username string
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// maxLen rejects values wider than their column.
func maxLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return models.NewValidationError(fmt.Sprintf("%s too long (max %d characters)", field, limit))
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func likeAction(liked bool) string {
	if liked {
		return "like"
	}
	return "unlike"
}

// cachedList serves a list through cache-aside, logging but not failing on cache errors.
func cachedList[T any](ctx context.Context, key string, fetch func() ([]*T, error)) ([]*T, error) {
	var out []*T
	err := cache.Aside(ctx, key, &out, cache.ListTTL, func() error {
		items, err := fetch()
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*T{}
	}
	return out, nil
}

func invalidate(ctx context.Context, keys ...string) {
	cache.Invalidate(ctx, keys...)
	observability.FromContext(ctx).Debug("cache invalidated", zap.Strings("keys", keys))
}
