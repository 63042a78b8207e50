package introspect

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Process-wide memo tables for accessor and field resolution. Entries are
// never evicted; both present and absent results are recorded, so any
// (type, name) pair costs at most one reflective scan for the process
// lifetime. sync.Map gives the insert-if-absent discipline, singleflight
// collapses concurrent first resolutions of the same key.
var (
	setterCache sync.Map // setterKey -> setterEntry
	fieldCache  sync.Map // fieldKey -> fieldEntry
	lookups     singleflight.Group
)

// Cache keys carry the reflect.Type itself: rendered type names are not
// unique (same-named types in same-base-named packages collide), the
// canonical type descriptors are.
type setterKey struct {
	owner    reflect.Type
	property string
	value    reflect.Type
}

type fieldKey struct {
	owner reflect.Type
	name  string
}

type setterEntry struct {
	method reflect.Method
	ok     bool
}

type fieldEntry struct {
	field reflect.StructField
	ok    bool
}

// LookupSetter resolves the writable accessor for property on t that can
// accept a value of valueType. The exact derived name with an assignable
// parameter wins; failing that, any setter-shaped method with the derived
// name is taken. valueType may be nil, in which case only the name is
// matched.
func LookupSetter(t reflect.Type, property string, valueType reflect.Type) (reflect.Method, bool) {
	k := setterKey{owner: t, property: property, value: valueType}
	if e, ok := setterCache.Load(k); ok {
		entry := e.(setterEntry)
		return entry.method, entry.ok
	}

	resolved, _, _ := lookups.Do(flightKey("set", t, fmt.Sprintf("%s(%p %s)", property, valueType, typeKey(valueType))), func() (any, error) {
		entry, _ := setterCache.LoadOrStore(k, resolveSetter(t, property, valueType))
		return entry, nil
	})
	entry := resolved.(setterEntry)
	return entry.method, entry.ok
}

func resolveSetter(t reflect.Type, property string, valueType reflect.Type) setterEntry {
	mt := methodOwner(t)
	name := "Set" + upperFirst(property)

	if m, ok := mt.MethodByName(name); ok && IsWriteAccessor(m) {
		if valueType == nil || valueType.AssignableTo(m.Type.In(1)) {
			return setterEntry{method: m, ok: true}
		}
	}
	// fallback scan: same derived name, any setter shape
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		if m.Name == name && IsWriteAccessor(m) {
			return setterEntry{method: m, ok: true}
		}
	}
	return setterEntry{}
}

// LookupField resolves the exported field published under the given
// property name. The capitalized exact name wins; failing that, any
// visible exported field whose derived property name matches is taken.
func LookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	k := fieldKey{owner: t, name: name}
	if e, ok := fieldCache.Load(k); ok {
		entry := e.(fieldEntry)
		return entry.field, entry.ok
	}

	resolved, _, _ := lookups.Do(flightKey("field", t, name), func() (any, error) {
		entry, _ := fieldCache.LoadOrStore(k, resolveField(t, name))
		return entry, nil
	})
	entry := resolved.(fieldEntry)
	return entry.field, entry.ok
}

func resolveField(t reflect.Type, name string) fieldEntry {
	for _, f := range PublicFields(t) {
		if f.Name == upperFirst(name) || FieldProperty(f.Name) == name || f.Name == name {
			return fieldEntry{field: f, ok: true}
		}
	}
	return fieldEntry{}
}

// flightKey builds the singleflight key. The type's canonical pointer
// disambiguates same-named types; the rendered name stays in for
// debuggability only.
func flightKey(kind string, t reflect.Type, rest string) string {
	return fmt.Sprintf("%s:%p:%s:%s", kind, t, t, rest)
}

func typeKey(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
