package ratelimit

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request counter kept in Redis.
type Limiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func New(rdb *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// hitScript counts a hit and arms the window TTL in one round trip. A key
// that somehow lost its TTL is re-armed so it cannot block forever.
var hitScript = redis.NewScript(`
	local n = redis.call("incr", KEYS[1])
	if n == 1 or redis.call("pttl", KEYS[1]) < 0 then
		redis.call("pexpire", KEYS[1], ARGV[1])
	end
	return {n, redis.call("pttl", KEYS[1])}
`)

// Allow counts one hit for key. When the window is full it returns false and
// the time left until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := fmt.Sprintf("ratelimit:%s:%s", l.prefix, key)

	res, err := hitScript.Run(ctx, l.rdb, []string{k}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return true, 0, err
	}
	if len(res) != 2 {
		return true, 0, fmt.Errorf("ratelimit: unexpected script reply %v", res)
	}
	if res[0] <= int64(l.limit) {
		return true, 0, nil
	}

	ttl := time.Duration(res[1]) * time.Millisecond
	if ttl <= 0 {
		ttl = l.window
	}
	return false, ttl, nil
}

// Middleware limits requests per key. Redis failures let the request through.
func (l *Limiter) Middleware(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" || l.limit <= 0 {
			c.Next()
			return
		}

		ok, retry, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			log.Printf("ratelimit: %s: %v", l.prefix, err)
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
