package cachedprovider

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pdark/i18n"
)

type memoryEntry struct {
	pattern   string
	found     bool
	expiresAt time.Time
}

func (e memoryEntry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// Memory is an in-process read-through cache around a Provider.
type Memory struct {
	source i18n.Provider
	opts   *options

	mu      sync.RWMutex
	entries map[string]memoryEntry
	group   singleflight.Group
}

// NewMemory wraps source with an in-process cache.
func NewMemory(source i18n.Provider, opts ...Option) *Memory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Memory{
		source:  source,
		opts:    o,
		entries: make(map[string]memoryEntry),
	}
}

// Lookup implements i18n.Provider. Concurrent lookups for the same entry
// share one source call.
func (m *Memory) Lookup(ctx context.Context, id string, locale i18n.Locale) (string, bool, error) {
	key := cacheKey(id, locale)

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if ok && !e.expired() {
		return e.pattern, e.found, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		pattern, found, err := m.source.Lookup(ctx, id, locale)
		if err != nil {
			return nil, err
		}

		ttl := m.opts.ttl
		if !found {
			ttl = m.opts.negativeTTL
		}
		e := memoryEntry{pattern: pattern, found: found, expiresAt: time.Now().Add(ttl)}

		m.mu.Lock()
		m.entries[key] = e
		m.mu.Unlock()

		return e, nil
	})
	if err != nil {
		return "", false, err
	}

	e = v.(memoryEntry)
	return e.pattern, e.found, nil
}

// Invalidate drops the cached entry for one (id, locale) pair.
func (m *Memory) Invalidate(id string, locale i18n.Locale) {
	m.mu.Lock()
	delete(m.entries, cacheKey(id, locale))
	m.mu.Unlock()
}

// Flush drops every cached entry.
func (m *Memory) Flush() {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
}

// Len returns the number of cached entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// cacheKey joins locale and id with a byte that appears in neither.
func cacheKey(id string, locale i18n.Locale) string {
	return string(locale) + "\x00" + id
}
