// Package generic defines the type-erased value model exchanged at the
// call boundary. A generic value is built only from nil, primitives,
// []any sequences, *Set collections and string/any-keyed mappings, so it
// can cross between processes that do not share concrete types.
package generic

import (
	"reflect"
	"sync"
)

// ClassKey is the reserved mapping key carrying the fully qualified name
// of the source type a bean was generalized from. It is optional metadata:
// a mapping without it is still a valid generic value.
const ClassKey = "class"

// IsSequence reports whether v is a generic ordered sequence.
func IsSequence(v any) bool {
	_, ok := v.([]any)
	return ok
}

// IsMapping reports whether v is one of the supported mapping kinds:
// a Go map, an *OrderedMap or a *sync.Map.
func IsMapping(v any) bool {
	switch v.(type) {
	case *OrderedMap, *sync.Map:
		return true
	case nil:
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// ClassOf returns the class tag of a mapping, if present.
func ClassOf(v any) (string, bool) {
	var tag any
	switch m := v.(type) {
	case map[string]any:
		tag = m[ClassKey]
	case map[any]any:
		tag = m[ClassKey]
	case *OrderedMap:
		tag, _ = m.Get(ClassKey)
	case *sync.Map:
		tag, _ = m.Load(ClassKey)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map {
			return "", false
		}
		key := reflect.ValueOf(ClassKey)
		if !key.Type().AssignableTo(rv.Type().Key()) {
			return "", false
		}
		got := rv.MapIndex(key)
		if !got.IsValid() {
			return "", false
		}
		tag = got.Interface()
	}
	name, ok := tag.(string)
	return name, ok
}

// Len returns the entry count of any supported mapping kind.
func Len(v any) int {
	switch m := v.(type) {
	case *OrderedMap:
		return m.Len()
	case *sync.Map:
		n := 0
		m.Range(func(any, any) bool { n++; return true })
		return n
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return rv.Len()
	}
	return 0
}

// ForEach walks the entries of any supported mapping kind. The walk stops
// early when fn returns false. Iteration order is the source's own order:
// insertion order for *OrderedMap, unspecified for hash kinds.
func ForEach(v any, fn func(k, val any) bool) {
	switch m := v.(type) {
	case *OrderedMap:
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if !fn(pair.Key, pair.Value) {
				return
			}
		}
		return
	case *sync.Map:
		m.Range(fn)
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !fn(iter.Key().Interface(), iter.Value().Interface()) {
			return
		}
	}
}

// Store inserts an entry into any supported mapping kind.
func Store(v any, key, val any) {
	switch m := v.(type) {
	case map[string]any:
		if s, ok := key.(string); ok {
			m[s] = val
		}
		return
	case map[any]any:
		m[key] = val
		return
	case *OrderedMap:
		m.Set(key, val)
		return
	case *sync.Map:
		m.Store(key, val)
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		vv := reflect.ValueOf(val)
		if val == nil {
			vv = reflect.Zero(rv.Type().Elem())
		}
		rv.SetMapIndex(reflect.ValueOf(key), vv)
	}
}
