package caster

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrLengthMismatch      = errors.New("values and types length mismatch")
	ErrNoUsableConstructor = errors.New("type has no usable constructor")
	ErrUnboundInterface    = errors.New("interface target has no registered binding")
)

// ConvertError reports a hard conversion failure with the destination
// type, the member being populated and the offending value. Structural
// mismatches that can be skipped (unknown mapping entries, unresolvable
// class tags) are not errors; this type is for failures that cannot be
// papered over.
type ConvertError struct {
	Dest   reflect.Type
	Member string
	Value  any
	Err    error
}

func (e *ConvertError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("convert into %s: value %v (%T): %v", e.Dest, e.Value, e.Value, e.Err)
	}
	return fmt.Sprintf("convert into %s.%s: value %v (%T): %v", e.Dest, e.Member, e.Value, e.Value, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }
