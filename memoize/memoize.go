package memoize

import (
	"context"
	"sync"

	"github.com/goliatone/go-memoize/cache"
	"go.uber.org/zap"
)

// Option configures a memoizing wrapper at construction time.
type Option func(*options)

type options struct {
	name       string
	store      cache.Store
	serializer cache.KeySerializer
	logger     *zap.Logger
}

// WithName sets the key namespace for the wrapper. Namespaces only matter
// when wrappers share a store; two wrappers with the same name and store will
// read each other's entries. Defaults to the wrapped function's runtime name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithStore sets the backing store. Defaults to a fresh unbounded store per
// wrapper; pass cache.NewBoundedStore output to bound memory, or a shared
// store to let several wrappers pool capacity.
func WithStore(store cache.Store) Option {
	return func(o *options) { o.store = store }
}

// WithKeySerializer sets the key derivation strategy. Defaults to the
// reflection-based serializer from the cache package.
func WithKeySerializer(serializer cache.KeySerializer) Option {
	return func(o *options) { o.serializer = serializer }
}

// WithLogger sets the logger used for key derivation warnings and hit or
// miss debug logging. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(fn any, opts []Option) options {
	o := options{
		serializer: cache.NewDefaultKeySerializer(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = cache.NewUnboundedStore()
	}
	if o.name == "" {
		o.name = functionName(fn)
	}
	return o
}

// serializeOrWarn derives the cache key, logging when derivation fails for a
// wrapper whose signature cannot surface the error.
func (o *options) serializeOrWarn(args ...any) (string, bool) {
	key, err := o.serializer.SerializeKey(o.name, args...)
	if err != nil {
		o.logger.Warn("memoize: key derivation failed, calling uncached",
			zap.String("fn", o.name),
			zap.Error(err))
		return "", false
	}
	return key, true
}

// Func0 memoizes a niladic function: the first call computes, every later
// call returns the recorded result. Safe for concurrent use.
func Func0[R any](fn func() R) func() R {
	var once sync.Once
	var result R
	return func() R {
		once.Do(func() {
			result = fn()
		})
		return result
	}
}

// Func1 returns a memoized version of fn with an identical signature. fn must
// be pure; see the package documentation for the precondition and the
// uncached fallback on key derivation failure.
func Func1[A any, R any](fn func(A) R, opts ...Option) func(A) R {
	o := newOptions(fn, opts)
	return func(a A) R {
		key, ok := o.serializeOrWarn(a)
		if !ok {
			return fn(a)
		}
		result, err := cache.GetOrCompute(context.Background(), o.store, key, func(ctx context.Context) (R, error) {
			return fn(a), nil
		})
		if err != nil {
			o.logger.Warn("memoize: store lookup failed, calling uncached",
				zap.String("fn", o.name),
				zap.String("key", key),
				zap.Error(err))
			return fn(a)
		}
		return result
	}
}

// Func2 returns a memoized version of a binary pure function.
func Func2[A any, B any, R any](fn func(A, B) R, opts ...Option) func(A, B) R {
	o := newOptions(fn, opts)
	return func(a A, b B) R {
		key, ok := o.serializeOrWarn(a, b)
		if !ok {
			return fn(a, b)
		}
		result, err := cache.GetOrCompute(context.Background(), o.store, key, func(ctx context.Context) (R, error) {
			return fn(a, b), nil
		})
		if err != nil {
			o.logger.Warn("memoize: store lookup failed, calling uncached",
				zap.String("fn", o.name),
				zap.String("key", key),
				zap.Error(err))
			return fn(a, b)
		}
		return result
	}
}

// Func3 returns a memoized version of a ternary pure function.
func Func3[A any, B any, C any, R any](fn func(A, B, C) R, opts ...Option) func(A, B, C) R {
	o := newOptions(fn, opts)
	return func(a A, b B, c C) R {
		key, ok := o.serializeOrWarn(a, b, c)
		if !ok {
			return fn(a, b, c)
		}
		result, err := cache.GetOrCompute(context.Background(), o.store, key, func(ctx context.Context) (R, error) {
			return fn(a, b, c), nil
		})
		if err != nil {
			o.logger.Warn("memoize: store lookup failed, calling uncached",
				zap.String("fn", o.name),
				zap.String("key", key),
				zap.Error(err))
			return fn(a, b, c)
		}
		return result
	}
}

// Func1E returns a memoized version of an error-returning function. Results
// are cached only on success; errors, including key derivation failures, are
// returned to the caller.
func Func1E[A any, R any](fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	o := newOptions(fn, opts)
	return func(a A) (R, error) {
		key, err := o.serializer.SerializeKey(o.name, a)
		if err != nil {
			var zero R
			return zero, err
		}
		return cache.GetOrCompute(context.Background(), o.store, key, func(ctx context.Context) (R, error) {
			return fn(a)
		})
	}
}

// Func2E returns a memoized version of a binary error-returning function.
func Func2E[A any, B any, R any](fn func(A, B) (R, error), opts ...Option) func(A, B) (R, error) {
	o := newOptions(fn, opts)
	return func(a A, b B) (R, error) {
		key, err := o.serializer.SerializeKey(o.name, a, b)
		if err != nil {
			var zero R
			return zero, err
		}
		return cache.GetOrCompute(context.Background(), o.store, key, func(ctx context.Context) (R, error) {
			return fn(a, b)
		})
	}
}

// Func1Ctx returns a memoized version of a context-aware function. The
// context flows to the store and the computation but never participates in
// the cache key.
func Func1Ctx[A any, R any](fn func(context.Context, A) (R, error), opts ...Option) func(context.Context, A) (R, error) {
	o := newOptions(fn, opts)
	return func(ctx context.Context, a A) (R, error) {
		key, err := o.serializer.SerializeKey(o.name, a)
		if err != nil {
			var zero R
			return zero, err
		}
		return cache.GetOrCompute(ctx, o.store, key, func(ctx context.Context) (R, error) {
			return fn(ctx, a)
		})
	}
}
