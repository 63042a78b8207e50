package caster

import (
	"fmt"
	"reflect"
	"sync"
)

// Constructor functions for types whose zero value is not usable.
// Registered once at start-up, consulted by instantiate before falling
// back to plain zero construction.
var (
	ctorMu       sync.RWMutex
	constructors = map[reflect.Type][]reflect.Value{}
)

// RegisterConstructor installs a constructor for the type of its first
// result. The function may take any parameters (they are passed
// default-valued) and may return an extra error. Several constructors
// may be registered for one type; the lowest-arity one wins.
func RegisterConstructor(fn any) error {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func || ft.NumOut() < 1 || ft.NumOut() > 2 {
		return fmt.Errorf("%w: constructor must be a func returning the instance", ErrNoUsableConstructor)
	}
	if ft.NumOut() == 2 && !ft.Out(1).Implements(errorType) {
		return fmt.Errorf("%w: second result must be an error", ErrNoUsableConstructor)
	}
	t := derefType(ft.Out(0))

	ctorMu.Lock()
	constructors[t] = append(constructors[t], reflect.ValueOf(fn))
	ctorMu.Unlock()
	return nil
}

// instantiate produces an addressable zero-initialized instance of a
// struct type, returned as a pointer value. A registered constructor is
// preferred, lowest arity first, invoked with one default-valued
// argument per parameter; without one, the zero value serves as the
// no-argument construction.
func instantiate(t reflect.Type) (reflect.Value, error) {
	ctorMu.RLock()
	ctors := constructors[t]
	ctorMu.RUnlock()
	if len(ctors) > 0 {
		return construct(t, ctors)
	}
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoUsableConstructor, t)
	}
	return reflect.New(t), nil
}

func construct(t reflect.Type, ctors []reflect.Value) (reflect.Value, error) {
	best := ctors[0]
	for _, c := range ctors[1:] {
		if c.Type().NumIn() < best.Type().NumIn() {
			best = c
		}
	}

	args := make([]reflect.Value, best.Type().NumIn())
	for i := range args {
		args[i] = reflect.Zero(best.Type().In(i))
	}

	out, err := callConstructor(best, args)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrNoUsableConstructor, t, err)
	}

	if out.Kind() == reflect.Pointer {
		if out.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s: constructor returned nil", ErrNoUsableConstructor, t)
		}
		return out, nil
	}
	ptr := reflect.New(out.Type())
	ptr.Elem().Set(out)
	return ptr, nil
}

func callConstructor(fn reflect.Value, args []reflect.Value) (out reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	res := fn.Call(args)
	if len(res) == 2 && !res[1].IsNil() {
		return reflect.Value{}, res[1].Interface().(error)
	}
	return res[0], nil
}
