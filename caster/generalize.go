package caster

import (
	"fmt"
	"reflect"
	"sync"

	"generic-caster/generic"
	"generic-caster/introspect"
	"generic-caster/registry"
)

// Generalize converts a typed value into its generic representation:
// nil, primitives, []any sequences, *generic.Set and mappings only.
// Enum values become their symbolic names, reflect.Type values their
// qualified names, and any other composite becomes a class-tagged
// mapping of its readable properties and public fields.
func (c *Caster) Generalize(v any) (any, error) {
	return c.generalize(v, newHistory())
}

func (c *Caster) generalize(v any, h *history) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	t := rv.Type()

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil, nil
		}
	}

	// enums become their symbolic names, enum sequences name sequences
	if introspect.IsEnum(t) {
		if name, ok := introspect.EnumName(v); ok {
			return name, nil
		}
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && introspect.IsEnum(t.Elem()) {
		names := make([]any, rv.Len())
		for i := range names {
			name, ok := introspect.EnumName(rv.Index(i).Interface())
			if !ok {
				return nil, &ConvertError{Dest: t, Value: rv.Index(i).Interface(),
					Err: fmt.Errorf("enum value has no symbolic name")}
			}
			names[i] = name
		}
		return names, nil
	}

	if introspect.IsPrimitive(t) {
		return v, nil
	}

	// a type literal generalizes to its qualified name
	if rt, ok := v.(reflect.Type); ok {
		return registry.NameFor(rt), nil
	}

	if result, hit := h.lookup(rv); hit {
		return result, nil
	}

	// already-generic containers still need their elements walked
	switch src := v.(type) {
	case *generic.Set:
		dest := generic.NewSet(src.Len())
		h.store(rv, dest)
		for _, e := range src.Values() {
			ge, err := c.generalize(e, h)
			if err != nil {
				return nil, err
			}
			dest.Add(ge)
		}
		return dest, nil
	case *generic.OrderedMap, *sync.Map:
		return c.generalizeMapping(rv, v, h)
	}

	base := rv
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	switch base.Kind() {
	case reflect.Slice, reflect.Array:
		dest := make([]any, base.Len())
		h.store(rv, dest)
		for i := range dest {
			ge, err := c.generalize(base.Index(i).Interface(), h)
			if err != nil {
				return nil, err
			}
			dest[i] = ge
		}
		return dest, nil

	case reflect.Map:
		return c.generalizeMapping(rv, base.Interface(), h)

	case reflect.Struct, reflect.Interface:
		return c.generalizeBean(rv, base, h)

	case reflect.Func, reflect.Chan:
		// no generic shape can carry these
		return nil, nil

	default:
		return v, nil
	}
}

// generalizeMapping rebuilds a mapping of a kind mirroring the source's
// kind, generalizing every key and value.
func (c *Caster) generalizeMapping(rv reflect.Value, src any, h *history) (any, error) {
	dest := mirrorMapping(src)
	h.store(rv, dest)

	var walkErr error
	generic.ForEach(src, func(k, val any) bool {
		gk, err := c.generalize(k, h)
		if err != nil {
			walkErr = err
			return false
		}
		gv, err := c.generalize(val, h)
		if err != nil {
			walkErr = err
			return false
		}
		generic.Store(dest, gk, gv)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return dest, nil
}

// mirrorMapping allocates an empty mapping of the best generic
// equivalent of the source's concrete kind: ordered stays ordered,
// concurrent stays concurrent, everything else hashes. String-keyed
// sources keep string keys for codec friendliness.
func mirrorMapping(src any) any {
	switch src.(type) {
	case *generic.OrderedMap:
		return generic.NewOrderedMap()
	case *sync.Map:
		return &sync.Map{}
	}
	rt := reflect.TypeOf(src)
	if rt.Kind() == reflect.Map && rt.Key().Kind() == reflect.String {
		return make(map[string]any, reflect.ValueOf(src).Len())
	}
	return make(map[any]any, generic.Len(src))
}

// generalizeBean turns a composite object into a class-tagged mapping:
// one entry per readable accessor, then one per public field not
// already claimed by an accessor of the same derived name.
func (c *Caster) generalizeBean(rv, base reflect.Value, h *history) (any, error) {
	dest := make(map[string]any)
	h.store(rv, dest)
	dest[generic.ClassKey] = registry.NameFor(base.Type())

	// pointer receivers need an addressable copy
	recv := rv
	if rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		recv = ptr
	}

	mt := recv.Type()
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		if !introspect.IsReadAccessor(m) {
			continue
		}
		val, err := invokeAccessor(recv, i)
		if err != nil {
			return nil, &ConvertError{Dest: base.Type(), Member: introspect.PropertyName(m.Name), Err: err}
		}
		gv, err := c.generalize(val, h)
		if err != nil {
			return nil, err
		}
		dest[introspect.PropertyName(m.Name)] = gv
	}

	if base.Kind() != reflect.Struct {
		return dest, nil
	}
	for _, f := range introspect.PublicFields(base.Type()) {
		name := introspect.FieldProperty(f.Name)
		if _, taken := dest[name]; taken {
			// an accessor of the same derived name has priority
			continue
		}
		fv := base.FieldByIndex(f.Index)
		if isNilable(fv.Kind()) && fv.IsNil() {
			continue
		}
		gv, err := c.generalize(fv.Interface(), h)
		if err != nil {
			return nil, err
		}
		dest[name] = gv
	}
	return dest, nil
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// invokeAccessor calls a zero-argument accessor, converting a panic
// inside it into an error that aborts the whole call.
func invokeAccessor(recv reflect.Value, idx int) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("accessor invocation failed: %v", r)
		}
	}()
	res := recv.Method(idx).Call(nil)
	return res[0].Interface(), nil
}
