package cachestore

import "sync/atomic"

// Stats is a point-in-time snapshot of a store's runtime counters.
//
// Hits counts lookups answered from the cache, Misses counts lookups that
// invoked the computation, and Evictions counts entries removed to make room.
// For the single-entry store every replacement of the slot is an eviction.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the fraction of lookups answered from the cache, in the
// range [0, 1]. It returns 0 before any lookup has happened.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// counters accumulates store metrics with atomic updates so stores can record
// from concurrent lookups without extra locking.
type counters struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
