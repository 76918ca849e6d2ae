// Package testsupport provides call-recording fixtures shared by the package
// tests: counters and instrumented pure functions for asserting how many
// times a memoized computation actually ran.
package testsupport

import (
	"sync"
	"sync/atomic"
)

// CallCounter counts invocations of an instrumented function. Safe for
// concurrent use.
type CallCounter struct {
	n atomic.Int64
}

// Inc records one invocation.
func (c *CallCounter) Inc() {
	c.n.Add(1)
}

// Count returns the number of recorded invocations.
func (c *CallCounter) Count() int {
	return int(c.n.Load())
}

// Reset clears the counter.
func (c *CallCounter) Reset() {
	c.n.Store(0)
}

// CountedSquare returns a pure square function that increments counter on
// every invocation, so tests can distinguish cache hits from recomputation.
func CountedSquare(counter *CallCounter) func(int) int {
	return func(n int) int {
		counter.Inc()
		return n * n
	}
}

// CountedConcat returns a pure binary function over strings that increments
// counter on every invocation.
func CountedConcat(counter *CallCounter) func(string, string) string {
	return func(a, b string) string {
		counter.Inc()
		return a + b
	}
}

// RecursiveFib builds a memoized Fibonacci function using wrap and returns
// it. The convention is fib(0) = fib(1) = 1. The recursion goes through the
// wrapped function, so with a full-history wrapper each distinct n computes
// once; counter records the actual computations.
func RecursiveFib(wrap func(func(int) int) func(int) int, counter *CallCounter) func(int) int {
	var fib func(int) int
	fib = wrap(func(n int) int {
		counter.Inc()
		if n <= 1 {
			return 1
		}
		return fib(n-1) + fib(n-2)
	})
	return fib
}

// Recorder captures the sequence of arguments an instrumented function was
// invoked with. Safe for concurrent use.
type Recorder[A any] struct {
	mu    sync.Mutex
	calls []A
}

// Record appends one invocation's argument.
func (r *Recorder[A]) Record(arg A) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, arg)
}

// Calls returns a copy of the recorded argument sequence.
func (r *Recorder[A]) Calls() []A {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]A(nil), r.calls...)
}

// Len returns the number of recorded invocations.
func (r *Recorder[A]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
