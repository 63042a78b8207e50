package caster

import (
	"fmt"
	"reflect"
	"sync"

	"generic-caster/convert"
	"generic-caster/generic"
	"generic-caster/introspect"
)

// Realize converts a generic value back into an instance of the type the
// descriptor names. Primitive inputs are coerced, symbolic names resolve
// enum constants, sequences and sets cross-convert with slices and
// arrays per the target shape, and mappings rebuild maps, beans or bound
// interface implementations. A mapping's class tag, when resolvable,
// overrides the declared target type.
func (c *Caster) Realize(v any, desc TypeDesc) (any, error) {
	return c.realize(v, desc, newHistory())
}

func (c *Caster) realize(v any, desc TypeDesc, h *history) (any, error) {
	if v == nil {
		return nil, nil
	}

	t := desc.Type
	vt := reflect.TypeOf(v)

	// enum constants from their symbolic names; an unmatched name fails
	if t != nil && introspect.IsEnum(t) && vt.Kind() == reflect.String {
		out, err := introspect.EnumFromName(t, reflect.ValueOf(v).String())
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	// primitive inputs go through compatible scalar conversion
	if introspect.IsPrimitive(vt) {
		out, err := convert.CompatibleAs(v, derefType(t), c.allowed)
		if err != nil {
			return nil, &ConvertError{Dest: t, Value: v, Err: err}
		}
		return pointerize(out, t)
	}

	rv := reflect.ValueOf(v)
	if result, hit := h.lookup(rv); hit {
		return result, nil
	}

	switch {
	case vt.Kind() == reflect.Slice || vt.Kind() == reflect.Array:
		return c.realizeSequence(rv, rv, desc, h)
	default:
		if set, ok := v.(*generic.Set); ok {
			return c.realizeSet(rv, set, desc, h)
		}
		if generic.IsMapping(v) {
			return c.realizeMapping(rv, v, desc, h)
		}
		// already a shape the target can accept
		return v, nil
	}
}

// realizeSequence converts a sequence input into the target container:
// a set, a typed slice, a fixed array, or a plain generic sequence when
// the target is unknown. origin is the value whose identity the result
// is registered under; it differs from src when a set delegates over its
// backing elements, so the second encounter of the same set still closes
// on the first result.
func (c *Caster) realizeSequence(origin, src reflect.Value, desc TypeDesc, h *history) (any, error) {
	t := derefType(desc.Type)

	switch {
	case isSetShaped(t):
		dest := generic.NewSet(src.Len())
		h.store(origin, dest)
		h.store(src, dest)
		elemDesc := desc.ArgAt(0)
		for i := 0; i < src.Len(); i++ {
			ev, err := c.realize(src.Index(i).Interface(), elemDesc, h)
			if err != nil {
				return nil, err
			}
			dest.Add(ev)
		}
		return dest, nil

	case t != nil && t.Kind() == reflect.Slice:
		dest := reflect.MakeSlice(t, src.Len(), src.Len())
		h.store(origin, dest.Interface())
		h.store(src, dest.Interface())
		elemDesc := descOr(desc.ArgAt(0), t.Elem())
		for i := 0; i < src.Len(); i++ {
			ev, err := c.realize(src.Index(i).Interface(), elemDesc, h)
			if err != nil {
				return nil, err
			}
			if err := place(dest.Index(i), ev); err != nil {
				return nil, &ConvertError{Dest: t, Member: fmt.Sprintf("[%d]", i), Value: ev, Err: err}
			}
		}
		return pointerize(dest.Interface(), desc.Type)

	case t != nil && t.Kind() == reflect.Array:
		arr := reflect.New(t).Elem()
		h.store(origin, arr.Addr().Interface())
		h.store(src, arr.Addr().Interface())
		elemDesc := descOr(desc.ArgAt(0), t.Elem())
		// excess source elements are dropped, missing slots stay zero
		n := min(src.Len(), t.Len())
		for i := 0; i < n; i++ {
			ev, err := c.realize(src.Index(i).Interface(), elemDesc, h)
			if err != nil {
				return nil, err
			}
			if err := place(arr.Index(i), ev); err != nil {
				return nil, &ConvertError{Dest: t, Member: fmt.Sprintf("[%d]", i), Value: ev, Err: err}
			}
		}
		return pointerize(arr.Interface(), desc.Type)

	default:
		// unknown or untyped target: a plain generic sequence
		dest := make([]any, src.Len())
		h.store(origin, dest)
		h.store(src, dest)
		elemDesc := desc.ArgAt(0)
		for i := range dest {
			ev, err := c.realize(src.Index(i).Interface(), elemDesc, h)
			if err != nil {
				return nil, err
			}
			dest[i] = ev
		}
		return dest, nil
	}
}

// realizeSet converts a set input: back into a set for set-shaped
// targets, into a slice or array otherwise (sequences and sets are dual
// with ordered containers across the boundary).
func (c *Caster) realizeSet(rv reflect.Value, src *generic.Set, desc TypeDesc, h *history) (any, error) {
	t := derefType(desc.Type)

	if t == nil || isSetShaped(t) {
		dest := generic.NewSet(src.Len())
		h.store(rv, dest)
		elemDesc := desc.ArgAt(0)
		for _, e := range src.Values() {
			ev, err := c.realize(e, elemDesc, h)
			if err != nil {
				return nil, err
			}
			dest.Add(ev)
		}
		return dest, nil
	}

	// delegate to the sequence logic over the backing elements, keyed by
	// the set's own identity
	return c.realizeSequence(rv, reflect.ValueOf(src.Values()), desc, h)
}

// realizeMapping dispatches a mapping input by the effective target: a
// resolvable class tag overrides the declared type; map-like or unknown
// targets rebuild a mapping, interface targets realize their bound
// implementation, anything else populates a bean.
func (c *Caster) realizeMapping(rv reflect.Value, v any, desc TypeDesc, h *history) (any, error) {
	if name, ok := generic.ClassOf(v); ok {
		if rt, found := c.reg.Resolve(name); found && rt != derefType(desc.Type) {
			// polymorphic reconstruction by embedded type tag
			desc = Desc(rt)
		}
		// an unresolvable tag is ignored, the declared target stands
	}

	t := derefType(desc.Type)

	switch {
	case t == nil || isMapLike(t) || (t.Kind() == reflect.Interface && t.NumMethod() == 0):
		return c.rebuildMapping(rv, v, desc, t, h)

	case t.Kind() == reflect.Interface:
		bound, ok := c.reg.Binding(t)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnboundInterface, t)
		}
		return c.realizeBean(rv, v, bound, h)

	case t.Kind() == reflect.Struct:
		out, err := c.realizeBean(rv, v, t, h)
		if err != nil {
			return nil, err
		}
		if desc.Type.Kind() != reflect.Pointer {
			return reflect.ValueOf(out).Elem().Interface(), nil
		}
		return out, nil

	default:
		// no meaningful conversion between a mapping and this target
		return v, nil
	}
}

// rebuildMapping reconstructs a mapping, mirroring the source kind for
// generic targets and building the declared map type for typed targets.
func (c *Caster) rebuildMapping(rv reflect.Value, v any, desc TypeDesc, t reflect.Type, h *history) (any, error) {
	keyDesc, valDesc := desc.ArgAt(0), desc.ArgAt(1)

	// a declared Go map is built as itself
	if t != nil && t.Kind() == reflect.Map {
		dest := reflect.MakeMapWithSize(t, generic.Len(v))
		h.store(rv, dest.Interface())
		var walkErr error
		generic.ForEach(v, func(k, val any) bool {
			rk, err := c.realize(k, keyDesc, h)
			if err != nil {
				walkErr = err
				return false
			}
			rval, err := c.realize(val, valDesc, h)
			if err != nil {
				walkErr = err
				return false
			}
			kv := reflect.New(t.Key()).Elem()
			vv := reflect.New(t.Elem()).Elem()
			if err := place(kv, rk); err != nil {
				walkErr = &ConvertError{Dest: t, Member: fmt.Sprint(k), Value: rk, Err: err}
				return false
			}
			if err := place(vv, rval); err != nil {
				walkErr = &ConvertError{Dest: t, Member: fmt.Sprint(k), Value: rval, Err: err}
				return false
			}
			dest.SetMapIndex(kv, vv)
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return pointerize(dest.Interface(), desc.Type)
	}

	dest := remapKind(v, t)
	h.store(rv, dest)
	var walkErr error
	generic.ForEach(v, func(k, val any) bool {
		rk, err := c.realize(k, keyDesc, h)
		if err != nil {
			walkErr = err
			return false
		}
		rval, err := c.realize(val, valDesc, h)
		if err != nil {
			walkErr = err
			return false
		}
		generic.Store(dest, rk, rval)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return dest, nil
}

// remapKind picks the destination mapping kind: mirror the source's
// concrete kind when possible, default to the insertion-ordered mapping
// otherwise. Targets that are themselves a generic mapping kind win.
func remapKind(src any, t reflect.Type) any {
	switch t {
	case orderedMapType:
		return generic.NewOrderedMap()
	case syncMapType:
		return &sync.Map{}
	}
	switch src.(type) {
	case map[string]any:
		return make(map[string]any, generic.Len(src))
	case map[any]any:
		return make(map[any]any, generic.Len(src))
	case *sync.Map:
		return &sync.Map{}
	default:
		return generic.NewOrderedMap()
	}
}

var (
	setType        = reflect.TypeOf((*generic.Set)(nil))
	orderedMapType = reflect.TypeOf((*generic.OrderedMap)(nil))
	syncMapType    = reflect.TypeOf((*sync.Map)(nil))
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
)

// isSetShaped reports whether the deref'd target is the set kind.
func isSetShaped(t reflect.Type) bool {
	return t == setType || t == setType.Elem()
}

// isMapLike reports whether the deref'd target is one of the mapping
// shapes rather than a bean.
func isMapLike(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Map {
		return true
	}
	pt := reflect.PointerTo(t)
	return pt == orderedMapType || pt == syncMapType || t == orderedMapType || t == syncMapType
}

// derefType strips pointers off a target type; nil stays nil.
func derefType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// descOr falls back to a concrete element type when the positional
// argument is unknown.
func descOr(d TypeDesc, fallback reflect.Type) TypeDesc {
	if d.Known() {
		return d
	}
	return TypeDesc{Type: fallback}
}

// pointerize wraps a produced value to match a pointer-shaped target.
func pointerize(v any, target reflect.Type) (any, error) {
	if target == nil || target.Kind() != reflect.Pointer || v == nil {
		return v, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == target {
		return v, nil
	}
	if rv.Type() != target.Elem() {
		return v, nil
	}
	ptr := reflect.New(target.Elem())
	ptr.Elem().Set(rv)
	return ptr.Interface(), nil
}

// place assigns a realized value into a destination slot, converting
// named scalars when assignment alone cannot.
func place(slot reflect.Value, v any) error {
	if v == nil {
		slot.SetZero()
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(slot.Type()):
		slot.Set(rv)
	case rv.Type().ConvertibleTo(slot.Type()) && rv.Kind() == slot.Kind():
		slot.Set(rv.Convert(slot.Type()))
	default:
		return fmt.Errorf("cannot place %s into %s", rv.Type(), slot.Type())
	}
	return nil
}
