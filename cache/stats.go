package cache

import "github.com/goliatone/go-memoize/internal/cachestore"

// Stats is a point-in-time snapshot of a store's runtime counters: hits,
// misses, and evictions. See cachestore.Stats for field semantics; the alias
// lets store implementations satisfy the Store interface without importing
// this package.
type Stats = cachestore.Stats
