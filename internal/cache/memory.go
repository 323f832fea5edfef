package cache

import (
	"sync"
	"time"
)

// memoryEntry holds a serialized value with its expiry.
type memoryEntry struct {
	value     []byte
	createdAt time.Time
	expiresAt time.Time
}

// memoryStore is the in-process fallback map. It is created once with the
// service and torn down with the process. Expired entries are treated as
// absent on read but are not proactively purged; the next Set for the same
// key overwrites them.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: make(map[string]memoryEntry)}
}

func (m *memoryStore) get(key string, now time.Time) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.items[key]
	if !ok || !now.Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (m *memoryStore) set(key string, value []byte, now time.Time, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryEntry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

func (m *memoryStore) delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

func (m *memoryStore) exists(key string, now time.Time) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.items[key]
	return ok && now.Before(e.expiresAt)
}

func (m *memoryStore) ttl(key string, now time.Time) (time.Duration, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.items[key]
	if !ok {
		return 0, false
	}
	remaining := e.expiresAt.Sub(now)
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}
