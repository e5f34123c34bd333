// Package cache fournit les compteurs utilisés par le rate limiting,
// sur Redis ou en mémoire quand Redis n'est pas configuré.
package cache

import (
	"context"
	"sync"
	"time"
)

type Counter interface {
	Get(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	SetFlag(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Del(ctx context.Context, keys ...string) error
}

type memItem struct {
	value   int64
	expires time.Time
}

// MemoryCounter est le repli mono-instance de RedisCounter.
type MemoryCounter struct {
	mu    sync.Mutex
	items map[string]memItem
	now   func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{items: make(map[string]memItem), now: time.Now}
}

// lookup doit être appelé avec mu verrouillé.
func (m *MemoryCounter) lookup(key string) (memItem, bool) {
	it, ok := m.items[key]
	if !ok {
		return memItem{}, false
	}
	if !it.expires.IsZero() && !m.now().Before(it.expires) {
		delete(m.items, key)
		return memItem{}, false
	}
	return it, true
}

func (m *MemoryCounter) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, _ := m.lookup(key)
	return it.value, nil
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, _ := m.lookup(key)
	it.value++
	it.expires = m.now().Add(window)
	m.items[key] = it
	return it.value, nil
}

func (m *MemoryCounter) SetFlag(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memItem{value: 1, expires: m.now().Add(ttl)}
	return nil
}

func (m *MemoryCounter) TTL(_ context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.lookup(key)
	if !ok || it.expires.IsZero() {
		return 0, nil
	}
	return it.expires.Sub(m.now()), nil
}

func (m *MemoryCounter) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}
