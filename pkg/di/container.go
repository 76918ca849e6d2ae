package di

import (
	"context"

	"github.com/goliatone/go-memoize/cache"
	"github.com/goliatone/go-memoize/memoize"
)

// Container provides dependency injection for memoization components.
// It manages singleton instances of the backing store and key serializer,
// and provides factory functions for creating memoized wrappers that share
// them.
type Container struct {
	store      cache.Store
	serializer cache.KeySerializer
	config     cache.Config
}

// NewContainer creates a new DI container with the provided store
// configuration. It initializes a bounded store and the default key
// serializer, so every wrapper created through the container shares one
// capacity-limited cache.
func NewContainer(config cache.Config) (*Container, error) {
	store, err := cache.NewBoundedStore(config)
	if err != nil {
		return nil, err
	}

	return &Container{
		store:      store,
		serializer: cache.NewDefaultKeySerializer(),
		config:     config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cache.DefaultConfig())
}

// Store returns the singleton store instance. This allows access to the
// underlying cache for advanced use cases such as targeted invalidation.
func (c *Container) Store() cache.Store {
	return c.store
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.serializer
}

// Config returns a copy of the store configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.config
}

// Stats returns a snapshot of the shared store's counters across every
// wrapper created through this container.
func (c *Container) Stats() cache.Stats {
	return c.store.Stats()
}

// Flush removes every entry from the shared store.
func (c *Container) Flush(ctx context.Context) error {
	return c.store.Flush(ctx)
}

// Memoized1 creates a memoized wrapper bound to the container's shared store
// and serializer. name is the key namespace and must be unique per logical
// function; two wrappers sharing a name and container read each other's
// entries.
//
// Since Go methods cannot have type parameters, this is provided as a
// package-level function. Example: di.Memoized1(container, "fib", fib)
func Memoized1[A any, R any](container *Container, name string, fn func(A) R) func(A) R {
	return memoize.Func1(fn,
		memoize.WithName(name),
		memoize.WithStore(container.store),
		memoize.WithKeySerializer(container.serializer),
	)
}

// Memoized1E creates an error-returning memoized wrapper bound to the
// container's shared store and serializer.
func Memoized1E[A any, R any](container *Container, name string, fn func(A) (R, error)) func(A) (R, error) {
	return memoize.Func1E(fn,
		memoize.WithName(name),
		memoize.WithStore(container.store),
		memoize.WithKeySerializer(container.serializer),
	)
}

// Memoized2 creates a binary memoized wrapper bound to the container's shared
// store and serializer.
func Memoized2[A any, B any, R any](container *Container, name string, fn func(A, B) R) func(A, B) R {
	return memoize.Func2(fn,
		memoize.WithName(name),
		memoize.WithStore(container.store),
		memoize.WithKeySerializer(container.serializer),
	)
}
