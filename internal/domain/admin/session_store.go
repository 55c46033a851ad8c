package admin

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "admin:session:revoked:"

// SessionStore tracks revoked session token ids.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisSessionStore keeps revoked token ids until the token would expire.
type RedisSessionStore struct {
	redis *redis.Client
}

// NewRedisSessionStore returns nil when client is nil so callers can pass
// the result straight to NewService.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	if client == nil {
		return nil
	}
	return &RedisSessionStore{redis: client}
}

func (s *RedisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.redis.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *RedisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redis.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
