package catalog

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	value   interface{}
	fetched time.Time
}

// Cache is a single-slot-per-key memoization: entries are overwritten
// in place on refresh, there is no capacity bound or eviction. The
// clock is injected so tests can control staleness.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
	group   singleflight.Group
}

func NewCache(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: map[string]cacheEntry{},
		now:     now,
	}
}

// GetOrFetch returns the cached value for key while it is younger than
// ttl, otherwise runs loader and stores its result. Concurrent misses
// for the same key share one loader call. Loader failures are returned
// uncached so the next call retries the source.
func (c *Cache) GetOrFetch(key string, ttl time.Duration, loader func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.lookup(key, ttl); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// a collapsed caller may arrive after the winner stored
		if v, ok := c.lookup(key, ttl); ok {
			return v, nil
		}

		v, err := loader()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{value: v, fetched: c.now()}
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (c *Cache) lookup(key string, ttl time.Duration) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetched) >= ttl {
		return nil, false
	}

	return e.value, true
}
