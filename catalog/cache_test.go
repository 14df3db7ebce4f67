package catalog

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestCacheGetOrFetch(t *testing.T) {
	now := time.Now()
	cache := NewCache(func() time.Time { return now })

	calls := 0
	loader := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	// miss invokes the loader
	v, err := cache.GetOrFetch("k", time.Minute, loader)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)

	// fresh hit skips the loader
	v, err = cache.GetOrFetch("k", time.Minute, loader)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)

	// a different key is its own slot
	v, err = cache.GetOrFetch("other", time.Minute, loader)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, v)

	// stale entry is refreshed in place
	now = now.Add(time.Minute)
	v, err = cache.GetOrFetch("k", time.Minute, loader)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, calls)
}

func TestCacheLoaderFailureNotCached(t *testing.T) {
	cache := NewCache(nil)

	calls := 0
	fail := func() (interface{}, error) {
		calls++
		return nil, errors.New("err-fetch")
	}

	_, err := cache.GetOrFetch("k", time.Minute, fail)
	assert.Equal(t, "err-fetch", err.Error())

	// the failed attempt did not poison the slot, next call retries
	v, err := cache.GetOrFetch("k", time.Minute, func() (interface{}, error) {
		return "ok", nil
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 1, calls)
}

func TestCacheCollapsesConcurrentFetches(t *testing.T) {
	cache := NewCache(nil)

	var mu sync.Mutex
	calls := 0
	gate := make(chan struct{})

	loader := func() (interface{}, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-gate
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.GetOrFetch("k", time.Minute, loader)
			assert.Equal(t, nil, err)
			assert.Equal(t, "value", v)
		}()
	}

	// let the in-flight fetch finish once all callers are queued
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}
