package redis

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   string
	list    []string
	expires time.Time
}

// memoryStore is an in-process IRedis for local runs without a Redis server
// and for tests. Expiry is checked lazily on access.
type memoryStore struct {
	mu   sync.Mutex
	data map[string]*memoryEntry
	now  func() time.Time
}

func NewMemory() IRedis {
	return NewMemoryWithClock(time.Now)
}

func NewMemoryWithClock(now func() time.Time) IRedis {
	return &memoryStore{data: make(map[string]*memoryEntry), now: now}
}

func (m *memoryStore) live(key string) (*memoryEntry, bool) {
	e, ok := m.data[key]
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.data, key)
		return nil, false
	}
	return e, true
}

func (m *memoryStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return m.now().Add(ttl)
}

func (m *memoryStore) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = &memoryEntry{value: value, expires: m.expiry(expiration)}
	return nil
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	if !ok {
		return "", ErrNotFound
	}
	return e.value, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryStore) Append(_ context.Context, key string, ttl time.Duration, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(key)
	if !ok {
		e = &memoryEntry{}
		m.data[key] = e
	}
	e.list = append(e.list, values...)
	if ttl > 0 {
		e.expires = m.expiry(ttl)
	}
	return nil
}

func (m *memoryStore) List(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(e.list))
	copy(out, e.list)
	return out, nil
}

func (m *memoryStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live(key)
	return ok, nil
}

func (m *memoryStore) Close() error { return nil }
