package introspect_test

import (
	"fmt"
	"reflect"
	"testing"

	"generic-caster/introspect"

	"github.com/stretchr/testify/assert"
)

func ExamplePropertyName() {
	fmt.Println(introspect.PropertyName("GetName"))
	fmt.Println(introspect.PropertyName("IsActive"))
	fmt.Println(introspect.PropertyName("Total"))
	fmt.Println(introspect.PropertyName("Get")) // too short to be a prefix
	// Output:
	// name
	// active
	// total
	// get
}

type account struct {
	Owner   string
	Balance int64

	secret string
}

func (a *account) GetOwner() string   { return a.Owner }
func (a *account) IsOverdrawn() bool  { return a.Balance < 0 }
func (a *account) SetOwner(s string)  { a.Owner = s }
func (a *account) SetBalance(n int64) { a.Balance = n }
func (a *account) Transfer(n int64)   { a.Balance -= n } // not an accessor

func TestReadables(t *testing.T) {
	acc := introspect.Readables(reflect.TypeOf(account{}))

	names := make([]string, 0, len(acc))
	for _, a := range acc {
		names = append(names, a.Name)
	}
	assert.ElementsMatch(t, []string{"owner", "overdrawn"}, names)
}

func TestPublicFields(t *testing.T) {
	fields := introspect.PublicFields(reflect.TypeOf(&account{}))

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Owner", "Balance"}, names)
}

func TestPublicFieldsPromoted(t *testing.T) {
	type base struct{ ID int }
	type derived struct {
		base
		Name string
	}

	fields := introspect.PublicFields(reflect.TypeOf(derived{}))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"ID", "Name"}, names)
}

func TestWriteAccessorShape(t *testing.T) {
	mt := reflect.TypeOf(&account{})

	set, _ := mt.MethodByName("SetOwner")
	assert.True(t, introspect.IsWriteAccessor(set))

	transfer, _ := mt.MethodByName("Transfer")
	assert.False(t, introspect.IsWriteAccessor(transfer)) // no Set prefix

	get, _ := mt.MethodByName("GetOwner")
	assert.False(t, introspect.IsWriteAccessor(get))
	assert.True(t, introspect.IsReadAccessor(get))
}
