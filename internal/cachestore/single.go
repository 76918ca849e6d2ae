package cachestore

import (
	"context"
	"sync"
)

// singleEntryStore retains only the most recent (key, value) pair. A lookup
// hits only when its key equals the key of the immediately preceding call;
// any other key evicts and replaces the sole entry.
//
// The slot is guarded by a mutex, so the store is safe for concurrent use,
// though interleaved callers with different keys will keep evicting each
// other's entry.
type singleEntryStore struct {
	mu        sync.Mutex
	populated bool
	key       string
	value     any
	counters  counters
}

// NewSingleEntryStore creates a store holding at most one entry.
func NewSingleEntryStore() *singleEntryStore {
	return &singleEntryStore{}
}

// GetOrCompute returns the stored value when key matches the current entry;
// otherwise it computes a fresh value and replaces the entry. Failed
// computations leave the previous entry in place.
func (s *singleEntryStore) GetOrCompute(ctx context.Context, key string, computeFn any) (any, error) {
	if err := validateComputeFn(computeFn); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.populated && s.key == key {
		s.counters.hits.Add(1)
		return s.value, nil
	}

	s.counters.misses.Add(1)
	value, err := callComputeFn(ctx, computeFn)
	if err != nil {
		return nil, err
	}

	if s.populated {
		s.counters.evictions.Add(1)
	}
	s.populated = true
	s.key = key
	s.value = value
	return value, nil
}

// Delete empties the slot when key matches the current entry.
func (s *singleEntryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.populated && s.key == key {
		s.populated = false
		s.value = nil
	}
	return nil
}

// Flush empties the slot unconditionally.
func (s *singleEntryStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.populated = false
	s.value = nil
	return nil
}

// Len reports 1 when the slot is populated, 0 otherwise.
func (s *singleEntryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.populated {
		return 1
	}
	return 0
}

// Stats returns a snapshot of the store's counters.
func (s *singleEntryStore) Stats() Stats {
	return s.counters.snapshot()
}
