package registry_test

import (
	"fmt"
	"reflect"
	"testing"

	"generic-caster/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoice struct {
	Number string
}

type payer interface {
	GetName() string
}

type company struct {
	Name string
}

func (c *company) GetName() string { return c.Name }

func ExampleNameFor() {
	fmt.Println(registry.NameFor(reflect.TypeOf(invoice{})))
	fmt.Println(registry.ShortNameFor(reflect.TypeOf(&invoice{})))
	fmt.Println(registry.NameFor(reflect.TypeOf(map[string]int{})))
	// Output:
	// generic-caster/registry_test.invoice
	// registry_test.invoice
	// map[string]int
}

func TestRegisterResolve(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(invoice{}))

	got, ok := r.Resolve("generic-caster/registry_test.invoice")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(invoice{}), got)

	// short alias resolves too
	got, ok = r.Resolve("registry_test.invoice")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(invoice{}), got)

	_, ok = r.Resolve("registry_test.unknown")
	assert.False(t, ok)
}

func TestRegisterDuplicate(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(invoice{}))
	// same type again is a no-op
	require.NoError(t, r.Register(&invoice{}))

	// a different type under a taken name is refused
	err := r.RegisterName("generic-caster/registry_test.invoice", company{})
	assert.ErrorIs(t, err, registry.ErrAlreadyRegistered)
}

func TestRegisterName(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.RegisterName("billing.Invoice", invoice{}))

	got, ok := r.Resolve("billing.Invoice")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(invoice{}), got)
}

func TestBindInterface(t *testing.T) {
	r := registry.New()
	require.NoError(t, registry.Bind[payer](r, &company{}))

	bound, ok := r.Binding(reflect.TypeOf((*payer)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(&company{}), bound)

	// a prototype that does not implement the interface is refused
	err := registry.Bind[payer](r, &invoice{})
	assert.Error(t, err)
}
