// Package cache provides a single-entry, fingerprint-keyed result cache.
//
// A cache holds at most one value at a time. A Get with a matching
// fingerprint returns the stored value unchanged; a mismatch computes,
// replaces, and returns the new value. Clear drops the entry and also
// invalidates any computation already in flight, so a cleared cache can
// only be repopulated by a Get issued after the clear.
package cache

import "sync"

// Cache memoizes the result of a computation keyed by an input
// fingerprint. It is designed for single-writer use; the mutex only
// protects against timer-goroutine interleavings.
type Cache[V any] struct {
	mu          sync.Mutex
	fingerprint string
	value       V
	ok          bool
	gen         uint64
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{}
}

// Get returns the cached value when fingerprint matches the stored
// entry, without calling compute. Otherwise it calls compute, stores the
// result under fingerprint, and returns it. The boolean reports whether
// the value came from the cache.
func (c *Cache[V]) Get(fingerprint string, compute func() V) (V, bool) {
	c.mu.Lock()
	if c.ok && c.fingerprint == fingerprint {
		v := c.value
		c.mu.Unlock()
		return v, true
	}
	gen := c.gen
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	// A Clear during compute bumps gen; the stale result is returned to
	// the caller but never stored.
	if c.gen == gen {
		c.fingerprint = fingerprint
		c.value = v
		c.ok = true
	}
	c.mu.Unlock()
	return v, false
}

// Clear unconditionally drops the stored entry. The next Get recomputes
// regardless of fingerprint.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	var zero V
	c.fingerprint = ""
	c.value = zero
	c.ok = false
	c.gen++
	c.mu.Unlock()
}

// Len reports 1 if an entry is stored, else 0.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok {
		return 1
	}
	return 0
}
