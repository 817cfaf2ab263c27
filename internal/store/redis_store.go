package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"timepick/internal/domain"
)

// Key schema:
//   timepick:{session}:{key}  string item, TTL renewed on every write

const redisKeyPrefix = "timepick:"

func redisKey(session domain.SessionID, key domain.StorageKey) string {
	return redisKeyPrefix + session.String() + ":" + key.String()
}

// DialRedis connects to the server at redisURL (e.g. "redis://localhost:6379/0")
// and verifies the connection.
func DialRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: ping redis: %w", domain.ErrStorage, err)
	}
	return rdb, nil
}

// RedisStorage keeps one session's items in Redis. Items expire ttl after the
// last write to them; a zero ttl keeps them until removed.
type RedisStorage struct {
	rdb     *redis.Client
	session domain.SessionID
	ttl     time.Duration
}

// NewRedisStorage returns a RedisStorage for session using rdb.
func NewRedisStorage(rdb *redis.Client, session domain.SessionID, ttl time.Duration) *RedisStorage {
	return &RedisStorage{rdb: rdb, session: session, ttl: ttl}
}

// GetItem returns the value under key and whether it was present.
func (s *RedisStorage) GetItem(ctx context.Context, key domain.StorageKey) (string, bool, error) {
	v, err := s.rdb.Get(ctx, redisKey(s.session, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %w", domain.ErrStorage, key, err)
	}
	return v, true, nil
}

// SetItem stores value under key and restarts its TTL.
func (s *RedisStorage) SetItem(ctx context.Context, key domain.StorageKey, value string) error {
	if err := s.rdb.Set(ctx, redisKey(s.session, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %w", domain.ErrStorage, key, err)
	}
	return nil
}

// RemoveItem deletes key.
func (s *RedisStorage) RemoveItem(ctx context.Context, key domain.StorageKey) error {
	if err := s.rdb.Del(ctx, redisKey(s.session, key)).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %w", domain.ErrStorage, key, err)
	}
	return nil
}

// Compile-time assertion that RedisStorage implements domain.SessionStorage.
var _ domain.SessionStorage = (*RedisStorage)(nil)
