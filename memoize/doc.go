// Package memoize provides transparent memoization wrappers for deterministic
// functions.
//
// # Overview
//
// Given a computation function, the package returns an equivalent function
// that records input and output pairs and answers repeated inputs from the
// cache instead of recomputing. Three mutually exclusive key policies are
// available, chosen at construction:
//
//   - Full history, serialized key: Func1, Func2, Func3 and their E/Ctx
//     variants derive a key from a deterministic serialization of all
//     arguments. The cache grows by one entry per distinct input.
//   - Full history, identity key: Identity caches per pointer identity of a
//     single object argument and releases entries when the key object becomes
//     unreachable. Unsuitable for value-typed arguments by construction.
//   - Single entry: Latest1 and Latest1Func retain only the most recent
//     (arguments, result) pair, with configurable argument equality.
//
// # Basic Usage
//
// Wrap a pure function and call the result exactly like the original:
//
//	square := memoize.Func1(func(n int) int { return n * n })
//	square(12) // computes
//	square(12) // cached
//
// Recursive functions memoize through a forward declaration:
//
//	var fib func(int) int
//	fib = memoize.Func1(func(n int) int {
//		if n <= 1 {
//			return 1
//		}
//		return fib(n-1) + fib(n-2)
//	})
//	fib(10) // 89, one computation per distinct n
//
// # Purity Precondition
//
// Memoization is correct only when the wrapped function is pure: its output
// must depend only on its arguments, with no side effects. If the function
// reads mutable external state, cached results go stale; the wrapper cannot
// detect this and it is explicitly the caller's responsibility.
//
// # Key Derivation and Failure Behavior
//
// Serialized-key wrappers require arguments the default serializer can render
// deterministically; function and channel arguments are rejected with
// cache.ErrUnserializable. Error-returning wrappers (Func1E, Func2E) surface
// that error to the caller. Pure-signature wrappers cannot return it, so they
// log a warning and invoke the function uncached; the call still produces the
// correct result, it just is not recorded.
//
// # Stores and Sharing
//
// Each wrapper defaults to its own unbounded store. Pass WithStore to bound
// memory (cache.NewBoundedStore) or to share one store between wrappers, and
// WithName to keep shared-store key namespaces distinct. Results computed
// with an error are never cached.
//
// # Concurrency
//
// Full-history wrappers are safe for concurrent use. The unbounded store may
// compute redundantly when two goroutines miss the same key at once; the
// bounded store deduplicates in-flight computations. Latest wrappers
// serialize calls behind a mutex.
package memoize
