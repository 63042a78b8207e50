package caster

import (
	"errors"
	"fmt"

	"generic-caster/generic"
	"generic-caster/introspect"
)

var ErrNotMapping = errors.New("view requires a mapping value")

// View is a lazy stand-in for a bean that never got realized: it wraps a
// class-tagged mapping and realizes individual properties on demand.
// Useful when the caller has no concrete type to bind an interface to
// but still wants typed access to selected members.
type View struct {
	backing any
	caster  *Caster
}

// NewView wraps a generic mapping. Anything that is not a mapping is
// rejected, a bean's generic shape is always a mapping.
func NewView(v any) (*View, error) {
	return std.NewView(v)
}

func (c *Caster) NewView(v any) (*View, error) {
	if !generic.IsMapping(v) {
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, v)
	}
	return &View{backing: v, caster: c}, nil
}

// Class returns the embedded type tag, when present.
func (w *View) Class() (string, bool) { return generic.ClassOf(w.backing) }

// Get returns the raw generic value stored under the property name.
func (w *View) Get(name string) (any, bool) {
	var out any
	found := false
	generic.ForEach(w.backing, func(k, val any) bool {
		if k == name {
			out, found = val, true
			return false
		}
		return true
	})
	return out, found
}

// GetAs realizes the property against the given target descriptor.
// A missing property realizes to nil.
func (w *View) GetAs(name string, desc TypeDesc) (any, error) {
	v, ok := w.Get(name)
	if !ok {
		return nil, nil
	}
	return w.caster.Realize(v, desc)
}

// Invoke answers a readable-accessor call by property lookup: the
// method name is reduced to its property name and realized against the
// declared result type. Only zero-argument accessors can be served this
// way.
func (w *View) Invoke(method string, result TypeDesc) (any, error) {
	return w.GetAs(introspect.PropertyName(method), result)
}

func (w *View) String() string {
	if name, ok := w.Class(); ok {
		return fmt.Sprintf("view of %s (%d properties)", name, generic.Len(w.backing)-1)
	}
	return fmt.Sprintf("view (%d properties)", generic.Len(w.backing))
}
