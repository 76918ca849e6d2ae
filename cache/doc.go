// Package cache provides the caching contracts and key serialization used by
// the memoize wrappers.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Store: a generic compute-through cache interface
//   - KeySerializer: builds stable cache keys from a namespace and arguments
//
// The cache package is designed to work with function wrappers that need to
// cache computation results while maintaining type safety through generics.
//
// # Basic Usage
//
// The simplest way to use the cache package is with the default key serializer:
//
//	serializer := cache.NewDefaultKeySerializer()
//	key, err := serializer.SerializeKey("fib", 42)
//
// For compute-through caching, combine a key with a Store implementation:
//
//	result, err := cache.GetOrCompute(ctx, store, key, func(ctx context.Context) (int, error) {
//		return fib(42), nil
//	})
//
// # Key Serialization Strategy
//
// The default key serializer uses reflection to handle various Go types:
//
//   - Basic types: kind-tagged string representation (int:42, string:42),
//     so values of different types never share a key
//   - Slices/arrays: recursive serialization of elements
//   - Maps: sorted key-value pairs for deterministic output
//   - Structs: exported fields with name:value pairs
//   - Other composite types: msgpack fallback, hex encoded
//   - Functions and channels: rejected with ErrUnserializable
//
// Rejecting function and channel arguments is deliberate. A pointer-formatted
// key is stable only within one process lifetime and silently breaks the
// correctness invariant of memoization, so the serializer surfaces an error
// instead of producing a collision-prone key.
//
// Keys longer than DefaultMaxKeyLength are replaced by an xxhash digest of the
// full serialization, keeping keys usable with backends that bound key size.
//
// # Purity Precondition
//
// Caching is correct only when the wrapped computation is pure: the same
// input must always yield the same output. If the computation reads mutable
// external state, cached results go stale. The cache cannot detect this; it
// is the caller's responsibility.
//
// # See Also
//
// For the function wrappers built on these contracts, see the memoize package.
package cache
