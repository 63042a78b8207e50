package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrUnknownEnumName is returned when a symbolic name matches no constant
// of the target enum type.
var ErrUnknownEnumName = errors.New("no enum constant matches the symbolic name")

// Enum support comes in two flavours, mirroring how Go code declares
// enums:
//
//   - a registered name table (any named comparable type, typically an
//     integer kind) installed once via RegisterEnum;
//   - the string-enum convention: a named string-kinded type converts by
//     cast, optionally vetoed by an IsValid() bool method.
var enumTables sync.Map // reflect.Type -> *enumTable

type enumTable struct {
	byName  map[string]reflect.Value
	byValue map[any]string
}

// RegisterEnum installs the name table for the enum type T. Safe for
// concurrent use; a second registration for the same type extends
// nothing and is ignored.
func RegisterEnum[T comparable](names map[string]T) {
	t := reflect.TypeOf(*new(T))
	table := &enumTable{
		byName:  make(map[string]reflect.Value, len(names)),
		byValue: make(map[any]string, len(names)),
	}
	for name, v := range names {
		table.byName[name] = reflect.ValueOf(v)
		table.byValue[v] = name
	}
	enumTables.LoadOrStore(t, table)
}

// IsEnum reports whether the type has name-based symbolic constants:
// a registered name table, or a named string-kinded type.
func IsEnum(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if _, ok := enumTables.Load(t); ok {
		return true
	}
	return t.Kind() == reflect.String && t.PkgPath() != ""
}

// EnumName returns the symbolic name of an enum value. Registered tables
// win; a string-kinded enum is its own name; any other value falls back
// to its Stringer form when available.
func EnumName(v any) (string, bool) {
	t := reflect.TypeOf(v)
	if e, ok := enumTables.Load(t); ok {
		name, found := e.(*enumTable).byValue[v]
		return name, found
	}
	if t.Kind() == reflect.String {
		return reflect.ValueOf(v).String(), true
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}

// EnumFromName resolves a symbolic name to the enum constant of type t.
func EnumFromName(t reflect.Type, name string) (any, error) {
	if e, ok := enumTables.Load(t); ok {
		v, found := e.(*enumTable).byName[name]
		if !found {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownEnumName, t.String(), name)
		}
		return v.Interface(), nil
	}
	if t.Kind() == reflect.String && t.PkgPath() != "" {
		v := reflect.ValueOf(name).Convert(t).Interface()
		if checker, ok := v.(interface{ IsValid() bool }); ok && !checker.IsValid() {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownEnumName, t.String(), name)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s is not an enum type", ErrUnknownEnumName, t.String())
}
