package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blocklist records revoked session tokens in Redis until they expire.
type Blocklist struct {
	rdb *redis.Client
}

func NewBlocklist(rdb *redis.Client) *Blocklist {
	return &Blocklist{rdb: rdb}
}

func blockKey(token string) string { return "token:" + token }

// Revoke blocks token until exp. Tokens already past exp are ignored.
func (b *Blocklist) Revoke(ctx context.Context, token string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, blockKey(token), "blocked", ttl).Err()
}

// IsRevoked reports whether token has been revoked.
func (b *Blocklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blockKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
