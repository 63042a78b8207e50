package caster

import "reflect"

// history is the per-call visited map. Keys are object identities, not
// equalities: two distinct but equal objects must convert independently,
// while the second encounter of the same object returns the result
// already produced for it, even when that result is still being filled.
// A history must never outlive or be shared beyond one call.
type history struct {
	entries map[refKey]*histEntry
}

// refKey captures the identity of a reference-shaped value. Slices carry
// their length so two windows over one backing array stay distinct; the
// type guards against a pointer and its first field sharing an address.
type refKey struct {
	ptr uintptr
	len int
	typ reflect.Type
}

type histEntry struct {
	src    any // pins the referent so its address cannot be recycled mid-call
	result any
}

func newHistory() *history {
	return &history{entries: make(map[refKey]*histEntry)}
}

// keyFor returns the identity key of v, or ok=false when v is a value
// shape without identity (and therefore cannot form a cycle).
func keyFor(rv reflect.Value) (refKey, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return refKey{ptr: rv.Pointer(), typ: rv.Type()}, true
	case reflect.Slice:
		return refKey{ptr: rv.Pointer(), len: rv.Len(), typ: rv.Type()}, true
	default:
		return refKey{}, false
	}
}

func (h *history) lookup(rv reflect.Value) (any, bool) {
	key, ok := keyFor(rv)
	if !ok {
		return nil, false
	}
	if e, hit := h.entries[key]; hit {
		return e.result, true
	}
	return nil, false
}

// store registers the result produced for an original value. Called with
// the empty container before its elements are filled, which is what lets
// cycles close on a partially built result.
func (h *history) store(rv reflect.Value, result any) {
	key, ok := keyFor(rv)
	if !ok {
		return
	}
	if e, hit := h.entries[key]; hit {
		e.result = result
		return
	}
	h.entries[key] = &histEntry{src: rv.Interface(), result: result}
}
