package memoize

import (
	"runtime"
	"sync/atomic"
	"weak"

	"github.com/goliatone/go-memoize/cache"
	"github.com/puzpuzpuz/xsync/v3"
)

// Identity is a full-history cache keyed by pointer identity. Two
// structurally equal but reference-distinct objects produce independent
// entries; the same pointer always hits its own entry.
//
// The cache holds only a weak reference to each key object: once no other
// reference to the object exists, the garbage collector reclaims it and the
// entry is dropped. This makes Identity suitable for caching derived data
// about objects whose lifetime the caller controls, without pinning them.
//
// Identity is unsuitable for value-typed arguments by construction; the API
// takes a pointer. It is safe for concurrent use, with the same redundancy
// caveat as the unbounded store: concurrent first calls for one pointer may
// compute twice.
type Identity[K any, V any] struct {
	compute func(*K) (V, error)
	entries *xsync.MapOf[weak.Pointer[K], V]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewIdentity creates an identity-keyed cache around compute. compute must be
// pure with respect to the pointed-to object's identity: repeated calls for
// the same pointer must yield equivalent results.
func NewIdentity[K any, V any](compute func(*K) (V, error)) *Identity[K, V] {
	return &Identity[K, V]{
		compute: compute,
		entries: xsync.NewMapOf[weak.Pointer[K], V](),
	}
}

// Get returns the cached value for key, computing and recording it on first
// access. Failed computations are returned to the caller and never cached.
func (c *Identity[K, V]) Get(key *K) (V, error) {
	wp := weak.Make(key)
	if v, ok := c.entries.Load(wp); ok {
		c.hits.Add(1)
		return v, nil
	}

	c.misses.Add(1)
	v, err := c.compute(key)
	if err != nil {
		var zero V
		return zero, err
	}

	if _, loaded := c.entries.LoadOrStore(wp, v); !loaded {
		// Drop the entry when the key object is reclaimed. Registered once
		// per stored entry; a stray second cleanup after a manual Delete and
		// re-store removes an already-absent key, which is harmless.
		runtime.AddCleanup(key, func(wp weak.Pointer[K]) {
			c.entries.Delete(wp)
		}, wp)
	}
	return v, nil
}

// Delete removes the entry for key, if present.
func (c *Identity[K, V]) Delete(key *K) {
	c.entries.Delete(weak.Make(key))
}

// Len returns the number of live entries. Entries whose key objects have been
// reclaimed but whose cleanups have not yet run may still be counted.
func (c *Identity[K, V]) Len() int {
	return c.entries.Size()
}

// Stats returns a snapshot of the cache's counters. Entries dropped by the
// garbage collector are not tracked as evictions.
func (c *Identity[K, V]) Stats() cache.Stats {
	return cache.Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
