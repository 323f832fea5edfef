// Package cache provides get/set/delete/exists/ttl operations over a
// primary key-value store with an in-process fallback map. The service
// never fails a caller: when the primary store is unreachable, entries
// live memory-only and are lost on restart, but reads and writes keep
// working.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports that a key is absent from the store. Any other
// error from a Store means the store itself misbehaved.
var ErrNotFound = errors.New("cache: key not found")

// Store is the primary key-value capability injected by the host process.
// The cache service depends only on this interface, never on the hosting
// process's connection lifecycle.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// TTL returns the remaining lifetime of key. Non-positive values mean
	// the key is absent or carries no expiry.
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RedisStore implements Store over a Redis client.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	// Redis returns -2 for a missing key and -1 for no expiry; both map
	// to non-positive durations, which the service treats as absence.
	return s.rdb.TTL(ctx, key).Result()
}
