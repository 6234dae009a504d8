package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	UserKeyPrefix        = "user:%s"
	MusicSearchKeyPrefix = "music:%d:%s"

	PublicCoupletsKey = "couplets:public"
	PublicBlogsKey    = "blogs:public"
	ProblemsKey       = "problems:all"
	PublicBouquetsKey = "bouquets:public"
	FlowersKey        = "flowers:all"
)

const (
	UserTTL        = 5 * time.Minute
	ListTTL        = 60 * time.Second
	MusicSearchTTL = 10 * time.Minute
)

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// MusicSearchKey normalizes the term so equivalent queries share an entry.
func MusicSearchKey(term string, limit int) string {
	return fmt.Sprintf(MusicSearchKeyPrefix, limit, strings.ToLower(strings.TrimSpace(term)))
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}
