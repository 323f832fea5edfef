package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// Service layers the fallback map under the primary store. All operations
// are total: a primary-store outage is logged, never surfaced, and writes
// keep landing in the fallback so subsequent reads stay served.
type Service struct {
	primary  Store // may be nil when the host supplies no store
	fallback *memoryStore

	// now is swapped in tests to advance the fallback clock.
	now func() time.Time
}

// NewService creates a cache service over the injected primary store.
// A nil primary is valid; the service then runs memory-only.
func NewService(primary Store) *Service {
	return &Service{
		primary:  primary,
		fallback: newMemoryStore(),
		now:      time.Now,
	}
}

// Get reads key into dest (a JSON-unmarshalable pointer). The primary
// store answers first; on any failure there (unreachable store, miss,
// malformed data) the fallback map answers, valid only while unexpired.
// Returns false on a complete miss.
func (s *Service) Get(ctx context.Context, key string, dest any) bool {
	if s.primary != nil {
		b, err := s.primary.Get(ctx, key)
		switch {
		case err == nil:
			uerr := json.Unmarshal(b, dest)
			if uerr == nil {
				return true
			}
			slog.Warn("cache entry malformed", "key", key, "error", uerr)
		case errors.Is(err, ErrNotFound):
			// fall through to the fallback map; the entry may be
			// memory-only after a primary outage
		default:
			slog.Warn("primary store read failed", "key", key, "error", err)
		}
	}

	b, ok := s.fallback.get(key, s.now())
	if !ok {
		slog.Debug("cache miss", "key", key)
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		slog.Warn("fallback entry malformed", "key", key, "error", err)
		return false
	}
	return true
}

// Set serializes value and writes it to the primary store with the given
// TTL, then unconditionally mirrors it into the fallback map. Returns
// false only when the value cannot be serialized at all.
func (s *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	b, err := json.Marshal(value)
	if err != nil {
		slog.Warn("cache value not serializable", "key", key, "error", err)
		return false
	}

	if s.primary != nil {
		if err := s.primary.Set(ctx, key, b, ttl); err != nil {
			slog.Warn("primary store write failed, entry is memory-only", "key", key, "error", err)
		}
	}

	s.fallback.set(key, b, s.now(), ttl)
	return true
}

// Delete removes key: best-effort on the primary, unconditional on the
// fallback map.
func (s *Service) Delete(ctx context.Context, key string) {
	if s.primary != nil {
		if err := s.primary.Delete(ctx, key); err != nil {
			slog.Warn("primary store delete failed", "key", key, "error", err)
		}
	}
	s.fallback.delete(key)
}

// Exists reports key presence: the primary answers when reachable,
// otherwise the fallback map's presence-and-unexpired check does.
func (s *Service) Exists(ctx context.Context, key string) bool {
	if s.primary != nil {
		ok, err := s.primary.Exists(ctx, key)
		if err == nil {
			return ok
		}
		slog.Warn("primary store exists check failed", "key", key, "error", err)
	}
	return s.fallback.exists(key, s.now())
}

// TTLRemaining returns the remaining lifetime of key, or false when the
// key is absent or already expired. The primary answers when reachable;
// otherwise the fallback expiry is used. Non-positive TTLs are absence.
func (s *Service) TTLRemaining(ctx context.Context, key string) (time.Duration, bool) {
	if s.primary != nil {
		d, err := s.primary.TTL(ctx, key)
		if err == nil {
			if d <= 0 {
				return 0, false
			}
			return d, true
		}
		slog.Warn("primary store ttl query failed", "key", key, "error", err)
	}
	return s.fallback.ttl(key, s.now())
}
