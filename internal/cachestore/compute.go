package cachestore

import (
	"context"
	"reflect"
)

// validateComputeFn performs validation of the computeFn parameter to ensure
// it matches the expected signature: func(context.Context) (T, error)
func validateComputeFn(computeFn any) error {
	if computeFn == nil {
		return &ConfigError{Field: "computeFn", Message: "cannot be nil"}
	}

	fnType := reflect.TypeOf(computeFn)

	if fnType.Kind() != reflect.Func {
		return &ConfigError{Field: "computeFn", Message: "must be a function"}
	}

	if fnType.NumIn() != 1 || fnType.NumOut() != 2 {
		return &ConfigError{Field: "computeFn", Message: "must have signature func(context.Context) (T, error)"}
	}

	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()
	if !fnType.In(0).Implements(contextType) {
		return &ConfigError{Field: "computeFn", Message: "first parameter must be context.Context"}
	}

	errorType := reflect.TypeOf((*error)(nil)).Elem()
	if !fnType.Out(1).Implements(errorType) {
		return &ConfigError{Field: "computeFn", Message: "second return value must be error"}
	}

	return nil
}

// callComputeFn uses reflection to call any function that matches the
// ComputeFn[T] signature: func(context.Context) (T, error)
// Note: computeFn is expected to be pre validated by validateComputeFn.
func callComputeFn(ctx context.Context, computeFn any) (any, error) {
	// Direct type assertion for the common case
	if fn, ok := computeFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	fnValue := reflect.ValueOf(computeFn)
	results := fnValue.Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if resultValue := results[0]; resultValue.IsValid() && resultValue.CanInterface() {
		result = resultValue.Interface()
	}

	var err error
	if errorValue := results[1]; errorValue.IsValid() && !errorValue.IsNil() {
		err = errorValue.Interface().(error)
	}

	return result, err
}
