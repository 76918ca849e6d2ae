package memoize

import "sync"

// Latest1 returns a single-entry memoized version of fn: only the most recent
// (argument, result) pair is retained, and a call hits only when its argument
// equals the immediately preceding call's argument. Any other argument evicts
// and replaces the sole entry, so the sequence f(a); f(b); f(a) with a != b
// computes three times.
//
// Arguments are compared with ==. Use Latest1Func for types that need a
// custom equality, or that are not comparable.
func Latest1[A comparable, R any](fn func(A) R) func(A) R {
	return Latest1Func(fn, func(a, b A) bool { return a == b })
}

// Latest1Func is Latest1 with an explicit argument equality function.
// eq must be reflexive and consistent with fn: arguments it reports equal
// must produce interchangeable results.
func Latest1Func[A any, R any](fn func(A) R, eq func(A, A) bool) func(A) R {
	var (
		mu        sync.Mutex
		populated bool
		lastArg   A
		lastRes   R
	)
	return func(a A) R {
		mu.Lock()
		defer mu.Unlock()

		if populated && eq(lastArg, a) {
			return lastRes
		}

		r := fn(a)
		populated = true
		lastArg = a
		lastRes = r
		return r
	}
}

// Latest1E is the error-returning form of Latest1. A failed computation
// leaves the previous entry in place and is never recorded.
func Latest1E[A comparable, R any](fn func(A) (R, error)) func(A) (R, error) {
	var (
		mu        sync.Mutex
		populated bool
		lastArg   A
		lastRes   R
	)
	return func(a A) (R, error) {
		mu.Lock()
		defer mu.Unlock()

		if populated && lastArg == a {
			return lastRes, nil
		}

		r, err := fn(a)
		if err != nil {
			return r, err
		}
		populated = true
		lastArg = a
		lastRes = r
		return r, nil
	}
}
