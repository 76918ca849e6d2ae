package memoize

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// functionName derives a key namespace from the wrapped function's runtime
// name, snake_cased with the import path stripped.
//
// Anonymous functions and closures get a UUID suffix: two closures created at
// the same call site share a runtime name even though they may capture
// different state, and a shared namespace would let them read each other's
// entries once wrappers share a store.
func functionName(fn any) string {
	name := runtimeFuncName(fn)
	if name == "" {
		return "fn_" + shortID()
	}

	anonymous := strings.Contains(name, ".func")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	name = toSnake(name)
	if name == "" {
		return "fn_" + shortID()
	}
	if anonymous {
		return name + "_" + shortID()
	}
	return name
}

func runtimeFuncName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	return rf.Name()
}

func shortID() string {
	id := uuid.New().String()
	return id[:8]
}
