package cachestore

import (
	"context"

	"github.com/viccon/sturdyc"
)

// boundedStore wraps a sturdyc client providing capacity and TTL bounded
// caching behaviour. sturdyc shards the key space and deduplicates in-flight
// computations for the same key, so concurrent first calls compute once.
type boundedStore struct {
	client   *sturdyc.Client[any]
	counters counters
}

// NewBoundedStore creates a new capacity bounded store.
// It validates the configuration and initializes a sturdyc client with the
// provided settings.
//
// The constructor translates Config parameters to sturdyc initialization:
// Capacity, NumShards, TTL, and EvictionPercentage are passed to
// sturdyc.New(); EvictionInterval is applied as an option when set.
//
// Version compatibility note: this implementation assumes sturdyc v1.x API.
func NewBoundedStore(cfg Config) (*boundedStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options []sturdyc.Option
	if cfg.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(cfg.EvictionInterval))
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		options...,
	)

	return &boundedStore{client: client}, nil
}

// GetOrCompute attempts to retrieve a value from the cache using the provided
// key. If the key is absent or expired, it executes computeFn to produce a
// fresh value, stores it, and returns it. Failed computations are returned to
// the caller and never cached.
//
// The computeFn parameter must be of type cache.ComputeFn[T] where T matches
// the expected result type.
func (s *boundedStore) GetOrCompute(ctx context.Context, key string, computeFn any) (any, error) {
	if err := validateComputeFn(computeFn); err != nil {
		return nil, err
	}

	// sturdyc does not report whether a value came from the cache, so track
	// it by observing whether computeFn ran.
	computed := false
	result, err := s.client.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		computed = true
		return callComputeFn(ctx, computeFn)
	})
	if computed {
		s.counters.misses.Add(1)
	} else {
		s.counters.hits.Add(1)
	}
	return result, err
}

// Delete removes a single entry from the store using the provided key.
// Subsequent GetOrCompute calls for that key will recompute.
func (s *boundedStore) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// Flush removes every entry from the store.
func (s *boundedStore) Flush(ctx context.Context) error {
	for _, key := range s.client.ScanKeys() {
		s.client.Delete(key)
	}
	return nil
}

// Len returns the number of entries currently held.
func (s *boundedStore) Len() int {
	return len(s.client.ScanKeys())
}

// Stats returns a snapshot of the store's counters. Evictions performed
// internally by sturdyc are not observable and stay at zero.
func (s *boundedStore) Stats() Stats {
	return s.counters.snapshot()
}
