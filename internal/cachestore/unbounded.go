package cachestore

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
)

// unboundedStore is the full-history store: it never evicts and grows by one
// entry per distinct key. Lookups and inserts are safe for concurrent use.
//
// Concurrent first calls for the same key may compute redundantly; whichever
// result lands last stays cached. For a pure computation the results are
// equal, so the redundancy costs work but never correctness.
type unboundedStore struct {
	entries  *xsync.MapOf[string, any]
	counters counters
}

// NewUnboundedStore creates the full-history store backed by a sharded
// concurrent map.
func NewUnboundedStore() *unboundedStore {
	return &unboundedStore{
		entries: xsync.NewMapOf[string, any](),
	}
}

// GetOrCompute returns the value cached under key, computing and recording it
// on first access. Failed computations are returned to the caller and never
// cached.
func (s *unboundedStore) GetOrCompute(ctx context.Context, key string, computeFn any) (any, error) {
	if err := validateComputeFn(computeFn); err != nil {
		return nil, err
	}

	if value, ok := s.entries.Load(key); ok {
		s.counters.hits.Add(1)
		return value, nil
	}

	s.counters.misses.Add(1)
	value, err := callComputeFn(ctx, computeFn)
	if err != nil {
		return nil, err
	}
	s.entries.Store(key, value)
	return value, nil
}

// Delete removes the entry for key, if present.
func (s *unboundedStore) Delete(ctx context.Context, key string) error {
	s.entries.Delete(key)
	return nil
}

// Flush removes every entry from the store.
func (s *unboundedStore) Flush(ctx context.Context) error {
	s.entries.Clear()
	return nil
}

// Len returns the number of entries currently held.
func (s *unboundedStore) Len() int {
	return s.entries.Size()
}

// Stats returns a snapshot of the store's counters. The unbounded store never
// evicts, so Evictions is always zero.
func (s *unboundedStore) Stats() Stats {
	return s.counters.snapshot()
}
