// Package caster converts arbitrary object graphs to generic values and
// back at a remote-call boundary. Generalize walks a typed graph and
// emits only primitives, sequences, sets and mappings; Realize walks a
// generic value plus a target type descriptor and rebuilds a typed
// graph. Both are cycle-safe via a per-call identity history and are
// safe to run from many goroutines at once: the only shared state is
// the process-wide accessor/field memo in the introspect package.
package caster

import (
	"generic-caster/convert"
	"generic-caster/registry"
)

// Caster bundles the configuration both directions share: the type
// registry used for class tags and interface bindings, and the coercion
// families the realizer may apply.
type Caster struct {
	reg     *registry.Registry
	allowed convert.CategoryEnum
}

type Option func(*Caster)

// WithRegistry overrides the registry used to resolve class tags and
// interface bindings.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Caster) { c.reg = r }
}

// WithCategories restricts the scalar coercion families the realizer
// may apply.
func WithCategories(allowed convert.CategoryEnum) Option {
	return func(c *Caster) { c.allowed = allowed }
}

func New(opts ...Option) *Caster {
	c := &Caster{
		reg:     registry.Default,
		allowed: convert.CategoryAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// std serves the package-level entry points.
var std = New()

// Generalize converts a typed value into its generic representation.
func Generalize(v any) (any, error) { return std.Generalize(v) }

// GeneralizeAll converts a batch of values, such as a call's argument
// list, preserving positions.
func GeneralizeAll(values []any) ([]any, error) { return std.GeneralizeAll(values) }

// Realize converts a generic value back into an instance of the target
// type.
func Realize(v any, desc TypeDesc) (any, error) { return std.Realize(v, desc) }

// RealizeAll converts parallel batches of values and type descriptors;
// the two must have equal length.
func RealizeAll(values []any, descs []TypeDesc) ([]any, error) { return std.RealizeAll(values, descs) }

func (c *Caster) GeneralizeAll(values []any) ([]any, error) {
	out := make([]any, len(values))
	for i, v := range values {
		gv, err := c.Generalize(v)
		if err != nil {
			return nil, err
		}
		out[i] = gv
	}
	return out, nil
}

func (c *Caster) RealizeAll(values []any, descs []TypeDesc) ([]any, error) {
	if len(values) != len(descs) {
		return nil, ErrLengthMismatch
	}
	out := make([]any, len(values))
	for i, v := range values {
		rv, err := c.Realize(v, descs[i])
		if err != nil {
			return nil, err
		}
		out[i] = rv
	}
	return out, nil
}
