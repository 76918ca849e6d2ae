package cache

import (
	"errors"
	"fmt"
)

// ErrUnserializable reports that an argument cannot be turned into a stable
// cache key. Serialized-key memoization requires arguments whose values can
// be rendered deterministically; functions and channels cannot.
var ErrUnserializable = errors.New("cache: argument is not serializable")

// ErrInvalidResultType reports that a cached value does not match the type
// requested by the caller. This indicates two callers sharing a key with
// different result types, typically a namespace collision.
var ErrInvalidResultType = errors.New("cache: cached value has unexpected type")

// SerializeError describes which argument failed key serialization and why.
// It unwraps to ErrUnserializable.
type SerializeError struct {
	// Index is the zero-based position of the offending argument.
	Index int

	// Kind is the reflect kind that was rejected, e.g. "func" or "chan".
	Kind string

	// Reason carries additional detail when the failure came from the
	// encoding fallback rather than the kind switch.
	Reason error
}

func (e *SerializeError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("cache: cannot serialize argument %d (%s): %v", e.Index, e.Kind, e.Reason)
	}
	return fmt.Sprintf("cache: cannot serialize argument %d of kind %s", e.Index, e.Kind)
}

func (e *SerializeError) Unwrap() error {
	return ErrUnserializable
}
