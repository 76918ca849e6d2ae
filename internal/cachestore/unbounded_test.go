package cachestore

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func countingCompute(calls *int, value any) func(ctx context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		*calls++
		return value, nil
	}
}

func TestUnboundedStore_ComputeOncePerKey(t *testing.T) {
	store := NewUnboundedStore()
	ctx := context.Background()

	calls := 0
	for i := 0; i < 5; i++ {
		value, err := store.GetOrCompute(ctx, "k", countingCompute(&calls, 42))
		if err != nil {
			t.Fatalf("GetOrCompute() error: %v", err)
		}
		if value != 42 {
			t.Fatalf("GetOrCompute() = %v, want 42", value)
		}
	}

	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}

	stats := store.Stats()
	if stats.Misses != 1 || stats.Hits != 4 {
		t.Errorf("Stats() = %+v, want 1 miss and 4 hits", stats)
	}
}

func TestUnboundedStore_DistinctKeysComputeIndependently(t *testing.T) {
	store := NewUnboundedStore()
	ctx := context.Background()

	calls := 0
	for _, key := range []string{"a", "b", "a", "b"} {
		if _, err := store.GetOrCompute(ctx, key, countingCompute(&calls, key)); err != nil {
			t.Fatalf("GetOrCompute(%q) error: %v", key, err)
		}
	}

	if calls != 2 {
		t.Errorf("compute ran %d times, want 2", calls)
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
}

func TestUnboundedStore_ErrorsAreNotCached(t *testing.T) {
	store := NewUnboundedStore()
	ctx := context.Background()

	wantErr := errors.New("flaky")
	calls := 0
	compute := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, wantErr
		}
		return "ok", nil
	}

	if _, err := store.GetOrCompute(ctx, "k", compute); !errors.Is(err, wantErr) {
		t.Fatalf("first GetOrCompute() error = %v, want %v", err, wantErr)
	}
	if store.Len() != 0 {
		t.Fatalf("Len() after failed compute = %d, want 0", store.Len())
	}

	value, err := store.GetOrCompute(ctx, "k", compute)
	if err != nil {
		t.Fatalf("second GetOrCompute() error: %v", err)
	}
	if value != "ok" {
		t.Errorf("second GetOrCompute() = %v, want ok", value)
	}
	if calls != 2 {
		t.Errorf("compute ran %d times, want 2", calls)
	}
}

func TestUnboundedStore_Delete(t *testing.T) {
	store := NewUnboundedStore()
	ctx := context.Background()

	calls := 0
	if _, err := store.GetOrCompute(ctx, "k", countingCompute(&calls, 1)); err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.GetOrCompute(ctx, "k", countingCompute(&calls, 1)); err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}
	if calls != 2 {
		t.Errorf("compute ran %d times after delete, want 2", calls)
	}
}

func TestUnboundedStore_RejectsInvalidComputeFn(t *testing.T) {
	store := NewUnboundedStore()
	ctx := context.Background()

	tests := []struct {
		name      string
		computeFn any
	}{
		{name: "nil", computeFn: nil},
		{name: "not a function", computeFn: 42},
		{name: "wrong arity", computeFn: func() (any, error) { return nil, nil }},
		{name: "wrong first param", computeFn: func(int) (any, error) { return nil, nil }},
		{name: "second return not error", computeFn: func(ctx context.Context) (any, any) { return nil, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.GetOrCompute(ctx, "k", tt.computeFn)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("GetOrCompute() error = %v, want *ConfigError", err)
			}
		})
	}
}

func TestUnboundedStore_ConcurrentAccess(t *testing.T) {
	store := NewUnboundedStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := string(rune('a' + j%8))
				value, err := store.GetOrCompute(ctx, key, func(ctx context.Context) (any, error) {
					return key, nil
				})
				if err != nil {
					t.Errorf("GetOrCompute(%q) error: %v", key, err)
					return
				}
				if value != key {
					t.Errorf("GetOrCompute(%q) = %v", key, value)
					return
				}
			}
		}()
	}
	wg.Wait()

	if store.Len() != 8 {
		t.Errorf("Len() = %d, want 8", store.Len())
	}
}
