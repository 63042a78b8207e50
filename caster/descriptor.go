package caster

import "reflect"

// TypeDesc identifies a realization target: a nominal type plus optional
// positional type arguments that disambiguate container element, key and
// value types. The zero TypeDesc means "unknown" and leaves realization
// to the input's own runtime shape.
type TypeDesc struct {
	Type reflect.Type
	Args []TypeDesc
}

// TypeFor builds the descriptor for a static type:
//
//	caster.TypeFor[map[string][]int]()
func TypeFor[T any]() TypeDesc {
	return TypeDesc{Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// Desc builds a descriptor with explicit type arguments, for targets
// whose static type does not carry them (interfaces, any).
func Desc(t reflect.Type, args ...TypeDesc) TypeDesc {
	return TypeDesc{Type: t, Args: args}
}

// Known reports whether the descriptor names a type at all.
func (d TypeDesc) Known() bool { return d.Type != nil }

// ArgAt returns the type argument at a position, or the zero descriptor
// when the descriptor is not parameterized or the index is out of range.
// Explicit arguments win; without them a container type's own element
// and key types serve as the positional arguments (slices: 0 = element;
// maps: 0 = key, 1 = value).
func (d TypeDesc) ArgAt(i int) TypeDesc {
	if i >= 0 && i < len(d.Args) {
		return d.Args[i]
	}
	t := d.Type
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return TypeDesc{}
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		if i == 0 {
			return TypeDesc{Type: t.Elem()}
		}
	case reflect.Map:
		switch i {
		case 0:
			return TypeDesc{Type: t.Key()}
		case 1:
			return TypeDesc{Type: t.Elem()}
		}
	}
	return TypeDesc{}
}
