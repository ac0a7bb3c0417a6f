// Package cache provides a generic in-memory TTL cache for fetch results.
package cache

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL memoizes the results of a fetch function keyed by its arguments.
// Entries expire ttl after insertion; expiry is checked lazily on read.
// A singleflight.Group coalesces concurrent fetches for the same key, so
// parallel commodity scans never issue duplicate upstream requests.
type TTL[K comparable, V any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[K]entry[V]
	group   singleflight.Group

	now func() time.Time // swapped in tests
}

// New creates an empty cache whose entries live for ttl after insertion.
func New[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{
		ttl:     ttl,
		entries: make(map[K]entry[V]),
		now:     time.Now,
	}
}

// Get returns the cached value for key if present and not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value for key, resetting its expiry clock.
func (c *TTL[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Len reports the number of entries, including any not yet lazily expired.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Do returns the cached value for key, or invokes fetch, stores the result
// and returns it. Errors are propagated and never cached, so a later call
// retries the fetch.
func (c *TTL[K, V]) Do(key K, fetch func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(fmt.Sprintf("%v", key), func() (interface{}, error) {
		// Re-check under singleflight: a concurrent caller may have
		// populated the entry while we waited.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		c.Put(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
