package repository

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultMaxEntries   = 10_000
	memorySweepInterval = 5 * time.Minute
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is an in-process CacheRepository used when Redis is disabled
// and in tests. Expired entries are swept periodically and the number of
// entries is capped.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	maxEntries int
	now        func() time.Time
	stopSweep  chan struct{}
	stopOnce   sync.Once
}

func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithLimit(DefaultMaxEntries)
}

// NewMemoryCacheWithLimit creates a cache holding at most maxEntries values;
// zero or less selects DefaultMaxEntries. Call Stop to end the sweeper.
func NewMemoryCacheWithLimit(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	m := &MemoryCache{
		data:       make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
		stopSweep:  make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

func (m *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(memorySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
}

func (m *MemoryCache) sweepLocked() {
	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopSweep) })
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores value; a zero ttl keeps it until it is evicted or the process
// exits. When the cache is full, expired entries go first, then the entry
// closest to expiry.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.sweepLocked()
		if len(m.data) >= m.maxEntries {
			m.evictLocked()
		}
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) evictLocked() {
	var victim string
	var victimExpiry time.Time
	found := false
	for key, entry := range m.data {
		switch {
		case !found:
		case entry.expiresAt.IsZero():
			continue
		case victimExpiry.IsZero() || entry.expiresAt.Before(victimExpiry):
		default:
			continue
		}
		victim, victimExpiry, found = key, entry.expiresAt, true
	}
	if found {
		delete(m.data, victim)
	}
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
