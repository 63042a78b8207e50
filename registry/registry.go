// Package registry resolves type names to loadable types. It is the Go
// stand-in for a class loader: realizable types are registered up front
// as prototypes, and a mapping's class tag can then be resolved back to
// a concrete type. It also carries interface bindings, the configuration
// that lets the realizer satisfy an interface target with a concrete
// registered implementation.
package registry

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"sync"

	"generic-caster/utils"
)

var ErrAlreadyRegistered = errors.New("type name is already registered")

// Registry is a name -> prototype table plus interface bindings. Safe
// for concurrent use; registration is expected at start-up, lookups on
// every call.
type Registry struct {
	mu     sync.RWMutex
	names  map[string]reflect.Type
	ifaces map[reflect.Type]reflect.Type
}

func New() *Registry {
	return &Registry{
		names:  make(map[string]reflect.Type),
		ifaces: make(map[reflect.Type]reflect.Type),
	}
}

// Default is the process-wide registry the caster entry points use when
// no override is given.
var Default = New()

// NameFor returns the fully qualified name a type is generalized under:
// import path dot type name, or the builtin notation for unnamed types.
func NameFor(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// ShortNameFor returns the last-package-segment form, e.g.
// "warehouse.Customer". Registered as an alias so tags produced by other
// runtimes with flat package names still resolve.
func ShortNameFor(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	pkg := utils.Second(path.Split(t.PkgPath()))
	return pkg + "." + t.Name()
}

// Register adds prototypes under their fully qualified name and their
// short alias. Pointer prototypes register their element type.
func (r *Registry) Register(prototypes ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, proto := range prototypes {
		t := reflect.TypeOf(proto)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if err := r.put(NameFor(t), t); err != nil {
			return err
		}
		if short := ShortNameFor(t); short != NameFor(t) {
			if err := r.put(short, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// RegisterName adds a prototype under an explicit name, for tags written
// by peers that do not use Go naming.
func (r *Registry) RegisterName(name string, prototype any) error {
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.put(name, t)
}

func (r *Registry) put(name string, t reflect.Type) error {
	if existing, ok := r.names[name]; ok {
		if existing == t {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.names[name] = t
	return nil
}

// MustRegister is Register that panics, for package init blocks.
func (r *Registry) MustRegister(prototypes ...any) {
	if err := r.Register(prototypes...); err != nil {
		panic(err)
	}
}

// Resolve turns a type name back into the registered type.
func (r *Registry) Resolve(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.names[name]
	return t, ok
}

// BindInterface routes realization of the given interface type to a
// concrete prototype. The prototype must implement the interface.
func (r *Registry) BindInterface(iface reflect.Type, prototype any) error {
	if iface == nil || iface.Kind() != reflect.Interface {
		return fmt.Errorf("binding target %v is not an interface", iface)
	}
	pt := reflect.TypeOf(prototype)
	if !pt.Implements(iface) {
		return fmt.Errorf("%s does not implement %s", pt, iface)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ifaces[iface] = pt
	return nil
}

// Binding returns the concrete type bound to an interface type.
func (r *Registry) Binding(iface reflect.Type) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.ifaces[iface]
	return t, ok
}

// Bind is the generic convenience form of BindInterface:
//
//	registry.Bind[Named](reg, &person{})
func Bind[I any](r *Registry, prototype any) error {
	return r.BindInterface(reflect.TypeOf((*I)(nil)).Elem(), prototype)
}
