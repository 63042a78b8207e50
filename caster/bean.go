package caster

import (
	"fmt"
	"reflect"

	"generic-caster/generic"
	"generic-caster/introspect"
)

// realizeBean instantiates the target struct type and populates it from
// the mapping's string-keyed entries: a writer accessor wins over a
// public field of the same derived name, entries matching neither are
// silently ignored (callers and callees may disagree on schema details).
// The populated instance is returned as a pointer value.
func (c *Caster) realizeBean(rv reflect.Value, v any, t reflect.Type, h *history) (any, error) {
	t = derefType(t)
	ptr, err := instantiate(t)
	if err != nil {
		return nil, err
	}
	h.store(rv, ptr.Interface())
	elem := ptr.Elem()

	var walkErr error
	generic.ForEach(v, func(k, val any) bool {
		name, ok := k.(string)
		if !ok || name == generic.ClassKey || val == nil {
			return true
		}

		if m, found := introspect.LookupSetter(t, name, reflect.TypeOf(val)); found {
			rval, err := c.realize(val, TypeDesc{Type: m.Type.In(1)}, h)
			if err != nil {
				walkErr = err
				return false
			}
			if err := invokeSetter(ptr, m, rval); err != nil {
				walkErr = &ConvertError{Dest: t, Member: name, Value: rval, Err: err}
				return false
			}
			return true
		}

		if f, found := introspect.LookupField(t, name); found {
			rval, err := c.realize(val, TypeDesc{Type: f.Type}, h)
			if err != nil {
				walkErr = err
				return false
			}
			if err := place(elem.FieldByIndex(f.Index), rval); err != nil {
				walkErr = &ConvertError{Dest: t, Member: name, Value: rval, Err: err}
				return false
			}
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if ptr.Type().Implements(errorType) {
		setErrorMessage(elem, v)
	}
	return ptr.Interface(), nil
}

// invokeSetter calls a writer accessor with the realized value,
// converting a panic or a returned error into a failure.
func invokeSetter(ptr reflect.Value, m reflect.Method, val any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("setter invocation failed: %v", r)
		}
	}()

	param := m.Type.In(1)
	arg := reflect.New(param).Elem()
	if err := place(arg, val); err != nil {
		return err
	}
	res := ptr.Method(m.Index).Call([]reflect.Value{arg})
	if len(res) == 1 && !res[0].IsNil() {
		return res[0].Interface().(error)
	}
	return nil
}

// setErrorMessage is the error-type backdoor: error values commonly keep
// their message in an unexported slot with no writer, so a mapping entry
// named "message" is assigned to a string field called Message or Msg
// directly, best effort.
func setErrorMessage(elem reflect.Value, v any) {
	var msg string
	generic.ForEach(v, func(k, val any) bool {
		if k == "message" {
			if s, ok := val.(string); ok {
				msg = s
			}
			return false
		}
		return true
	})
	if msg == "" {
		return
	}
	for _, name := range []string{"Message", "Msg"} {
		f := elem.FieldByName(name)
		if f.IsValid() && f.Kind() == reflect.String && f.CanSet() {
			f.SetString(msg)
			return
		}
	}
}
