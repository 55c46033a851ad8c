package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/misk/misk-api/internal/pkg/logger"
	"github.com/misk/misk-api/internal/pkg/response"
)

// WindowCounter counts hits for a key inside a fixed window.
type WindowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisWindowCounter implements WindowCounter with SET NX EX + INCR in one transaction.
type RedisWindowCounter struct {
	client *redis.Client
}

// NewRedisWindowCounter returns nil for a nil client, which disables RateLimit.
func NewRedisWindowCounter(client *redis.Client) WindowCounter {
	if client == nil {
		return nil
	}
	return &RedisWindowCounter{client: client}
}

func (c *RedisWindowCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, window)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit limits requests per client IP. Counter errors let the request through.
// A nil counter disables the limit.
func RateLimit(counter WindowCounter, scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if counter == nil || limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "ratelimit:" + scope + ":" + ClientIP(r)

			count, err := counter.Hit(r.Context(), key, window)
			if err != nil {
				logger.FromContext(r.Context()).Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				response.TooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
