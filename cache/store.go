package cache

import "context"

// ComputeFn is the function signature Store expects when computing a value on
// a cache miss.
type ComputeFn[T any] func(ctx context.Context) (T, error)

// Store exposes the compute-through caching operations the memoize wrappers
// need. It is exported so that other packages can provide alternate backing
// stores while reusing the default serializer and wrappers.
//
// GetOrCompute returns the cached value for key when present; otherwise it
// invokes computeFn, records the result under key, and returns it. Failed
// computations are returned to the caller and never cached. computeFn must be
// of type ComputeFn[T] for some T.
type Store interface {
	GetOrCompute(ctx context.Context, key string, computeFn any) (any, error)
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
	Len() int
	Stats() Stats
}

// GetOrCompute is a type-safe wrapper function that provides generic support
// for Store. On a type mismatch between the cached value and T it returns the
// zero value of T together with ErrInvalidResultType.
func GetOrCompute[T any](ctx context.Context, store Store, key string, computeFn ComputeFn[T]) (T, error) {
	result, err := store.GetOrCompute(ctx, key, computeFn)
	if err != nil {
		var zero T
		return zero, err
	}
	if result == nil {
		// A nil interface is the zero value for pointer and interface T;
		// asserting it directly would panic.
		var zero T
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, ErrInvalidResultType
	}
	return typed, nil
}
