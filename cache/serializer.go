package cache

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// DefaultMaxKeyLength is the longest key the default serializer emits before
// collapsing the serialization into an xxhash digest.
const DefaultMaxKeyLength = 256

// KeySerializer builds a cache key from a namespace + arbitrary args.
// It is responsible for producing stable keys across calls: equal argument
// values must always serialize to the same key, and unequal values (including
// values of different types) must never share one.
type KeySerializer interface {
	SerializeKey(namespace string, args ...any) (string, error)
}

// defaultKeySerializer implements KeySerializer using reflection-based
// serialization. Every scalar segment carries its kind tag so that, say, the
// int 1 and the string "1" derive distinct keys. Composite types the walker
// does not model fall back to msgpack, and unserializable kinds surface an
// error instead of a collision-prone key.
type defaultKeySerializer struct {
	maxKeyLength int
}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{maxKeyLength: DefaultMaxKeyLength}
}

// NewKeySerializerWithMaxLength creates a default key serializer that digests
// any key longer than maxKeyLength. A maxKeyLength <= 0 disables digesting.
func NewKeySerializerWithMaxLength(maxKeyLength int) KeySerializer {
	return &defaultKeySerializer{maxKeyLength: maxKeyLength}
}

// SerializeKey builds a cache key from namespace and args using reflection.
// It produces stable keys across runs by handling various Go types
// deterministically.
func (s *defaultKeySerializer) SerializeKey(namespace string, args ...any) (string, error) {
	if len(args) == 0 {
		return namespace, nil
	}

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, namespace)

	for i, arg := range args {
		serialized, err := s.serializeValue(i, arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, serialized)
	}

	key := strings.Join(parts, KeySeparator)
	if s.maxKeyLength > 0 && len(key) > s.maxKeyLength {
		return fmt.Sprintf("%s%sxxh64:%016x", namespace, KeySeparator, xxhash.Sum64String(key)), nil
	}
	return key, nil
}

// serializeValue handles individual argument serialization based on type.
// The index identifies the argument in error reports.
func (s *defaultKeySerializer) serializeValue(index int, v any) (string, error) {
	if v == nil {
		return "nil", nil
	}

	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf(v)

	switch rt.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// A %p-formatted key would be stable only within one process and
		// would defeat the correctness invariant, so reject outright.
		return "", &SerializeError{Index: index, Kind: rt.Kind().String()}

	case reflect.Ptr:
		if rv.IsNil() {
			return "nil", nil
		}
		return s.serializeValue(index, rv.Elem().Interface())

	case reflect.Interface:
		if rv.IsNil() {
			return "nil", nil
		}
		return s.serializeValue(index, rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil", nil
		}
		return s.serializeList(index, "slice", rv)

	case reflect.Array:
		return s.serializeList(index, "array", rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil", nil
		}
		return s.serializeMap(index, rv)

	case reflect.Struct:
		return s.serializeStruct(index, rv, rt)
	}

	// Basic types carry their kind tag so identical renderings of different
	// types never collide.
	if isBasicKind(rt.Kind()) {
		return fmt.Sprintf("%s:%v", rt.Kind().String(), v), nil
	}

	return s.msgpackFallback(index, rt, v)
}

// serializeList handles slice and array serialization recursively.
func (s *defaultKeySerializer) serializeList(index int, label string, rv reflect.Value) (string, error) {
	length := rv.Len()
	parts := make([]string, length)

	for i := 0; i < length; i++ {
		serialized, err := s.serializeValue(index, rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		parts[i] = serialized
	}

	return fmt.Sprintf("%s[%d]:{%s}", label, length, strings.Join(parts, ",")), nil
}

// serializeMap handles map serialization with sorted keys for determinism.
func (s *defaultKeySerializer) serializeMap(index int, rv reflect.Value) (string, error) {
	keys := rv.MapKeys()

	type pair struct {
		key   string
		value reflect.Value
	}
	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		serialized, err := s.serializeValue(index, k.Interface())
		if err != nil {
			return "", err
		}
		pairs = append(pairs, pair{key: serialized, value: rv.MapIndex(k)})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	rendered := make([]string, len(pairs))
	for i, p := range pairs {
		valueStr, err := s.serializeValue(index, p.value.Interface())
		if err != nil {
			return "", err
		}
		rendered[i] = fmt.Sprintf("%s=%s", p.key, valueStr)
	}

	return fmt.Sprintf("map[%d]:{%s}", len(rendered), strings.Join(rendered, ",")), nil
}

// serializeStruct handles struct serialization with field names.
func (s *defaultKeySerializer) serializeStruct(index int, rv reflect.Value, rt reflect.Type) (string, error) {
	numFields := rv.NumField()
	parts := make([]string, 0, numFields)

	for i := 0; i < numFields; i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldValue := rv.Field(i)
		if !fieldValue.CanInterface() {
			continue
		}

		serialized, err := s.serializeValue(index, fieldValue.Interface())
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s:%s", field.Name, serialized))
	}

	return fmt.Sprintf("struct:{%s}", strings.Join(parts, ",")), nil
}

// isBasicKind checks if a kind represents a basic Go type.
func isBasicKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// msgpackFallback encodes composite types the reflection walker does not
// model. Encoding failures surface as SerializeError rather than falling back
// to memory addresses.
func (s *defaultKeySerializer) msgpackFallback(index int, rt reflect.Type, v any) (string, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return "", &SerializeError{Index: index, Kind: rt.Kind().String(), Reason: err}
	}
	return fmt.Sprintf("msgpack:%x", data), nil
}
