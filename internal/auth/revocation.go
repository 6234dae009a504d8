package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker keeps the jti of logged-out tokens until they would have expired.
// Without Redis nothing is ever revoked.
type Revoker struct {
	rdb *redis.Client
}

func NewRevoker(rdb *redis.Client) *Revoker {
	return &Revoker{rdb: rdb}
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

// Revoke blacklists jti for ttl.
func (r *Revoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if r == nil || r.rdb == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

// IsRevoked reports whether jti was blacklisted.
func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if r == nil || r.rdb == nil {
		return false, nil
	}
	err := r.rdb.Get(ctx, blacklistKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
