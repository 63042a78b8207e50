package introspect

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// PropertyName derives a property name from an accessor method name:
// a Get or Is prefix is stripped and the first remaining rune is
// lower-cased; a name without such a prefix just gets its first rune
// lower-cased.
func PropertyName(method string) string {
	switch {
	case len(method) > 3 && method[:3] == "Get":
		return lowerFirst(method[3:])
	case len(method) > 2 && method[:2] == "Is":
		return lowerFirst(method[2:])
	default:
		return lowerFirst(method)
	}
}

// FieldProperty derives the property name a public field is published
// under: the exported field name with its first rune lower-cased.
func FieldProperty(field string) string { return lowerFirst(field) }

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Accessor is a resolved readable property: the derived name plus the
// zero-argument single-result method that produces its value.
type Accessor struct {
	Name   string
	Method reflect.Method
}

// IsReadAccessor reports whether m is a readable property accessor:
// a Get- or Is-prefixed exported method taking no arguments and
// returning exactly one value.
func IsReadAccessor(m reflect.Method) bool {
	if !m.IsExported() {
		return false
	}
	prefixed := (len(m.Name) > 3 && m.Name[:3] == "Get") ||
		(len(m.Name) > 2 && m.Name[:2] == "Is")
	if !prefixed {
		return false
	}
	// NumIn counts the receiver
	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1
}

// IsWriteAccessor reports whether m is a writable property accessor:
// a Set-prefixed exported method taking one argument and returning
// nothing (or only an error).
func IsWriteAccessor(m reflect.Method) bool {
	if !m.IsExported() {
		return false
	}
	if len(m.Name) <= 3 || m.Name[:3] != "Set" {
		return false
	}
	if m.Type.NumIn() != 2 {
		return false
	}
	switch m.Type.NumOut() {
	case 0:
		return true
	case 1:
		return isErrorType(m.Type.Out(0))
	default:
		return false
	}
}

func isErrorType(t reflect.Type) bool {
	return t != nil && t.Implements(reflect.TypeOf((*error)(nil)).Elem())
}

// Readables lists the readable accessors of t in method order. When t is
// a struct type its pointer method set is used, since property accessors
// commonly take pointer receivers.
func Readables(t reflect.Type) []Accessor {
	mt := methodOwner(t)
	var out []Accessor
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		if IsReadAccessor(m) {
			out = append(out, Accessor{Name: PropertyName(m.Name), Method: m})
		}
	}
	return out
}

// PublicFields lists the exported, non-embedded fields of the underlying
// struct type, including fields promoted from embedded structs. Returns
// nil when t does not resolve to a struct.
func PublicFields(t reflect.Type) []reflect.StructField {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var out []reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		out = append(out, f)
	}
	return out
}

// methodOwner picks the type whose method set to enumerate: the pointer
// type for addressable struct targets, the type itself otherwise.
func methodOwner(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Struct {
		return reflect.PointerTo(t)
	}
	return t
}
