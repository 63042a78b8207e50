package caster

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"generic-caster/generic"
	"generic-caster/warehouse"
)

type counter struct{ Count int }

func (c *counter) GetCount() int { return c.Count * 10 }

type node struct {
	Name string
	Next *node
}

func TestGeneralizeScalars(t *testing.T) {
	born := time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"int", 42, 42},
		{"int64", int64(-7), int64(-7)},
		{"string", "hello", "hello"},
		{"bool", true, true},
		{"float", 2.5, 2.5},
		{"time", born, born},
		{"duration", 3 * time.Second, 3 * time.Second},
		{"nil pointer", (*warehouse.Product)(nil), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Generalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGeneralizeEnums(t *testing.T) {
	got, err := Generalize(warehouse.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, "shipped", got)

	got, err = Generalize([]warehouse.OrderStatus{warehouse.StatusPaid, warehouse.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []any{"paid", "pending"}, got)
}

func TestGeneralizeSequences(t *testing.T) {
	got, err := Generalize([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	got, err = Generalize([2]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = Generalize(generic.SetOf(1, "two"))
	require.NoError(t, err)
	set, ok := got.(*generic.Set)
	require.True(t, ok)
	assert.Equal(t, []any{1, "two"}, set.Values())
}

func TestGeneralizeMappingsMirrorKind(t *testing.T) {
	got, err := Generalize(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, got)

	got, err = Generalize(map[int]string{7: "seven"})
	require.NoError(t, err)
	assert.Equal(t, map[any]any{7: "seven"}, got)

	om := generic.NewOrderedMap()
	om.Set("z", 1)
	om.Set("a", 2)
	got, err = Generalize(om)
	require.NoError(t, err)
	out, ok := got.(*generic.OrderedMap)
	require.True(t, ok)
	var keys []any
	for pair := out.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []any{"z", "a"}, keys)
}

func TestGeneralizeBean(t *testing.T) {
	c := &warehouse.Customer{ID: 9, FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, c.SetEmail("ada@lovelace.io"))

	got, err := Generalize(c)
	require.NoError(t, err)
	m, ok := got.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "generic-caster/warehouse.Customer", m[generic.ClassKey])
	assert.Equal(t, "Ada", m["firstName"])
	assert.Equal(t, "ada@lovelace.io", m["email"])

	// nil-able members without a value stay out of the mapping
	_, present := m["dateOfBirth"]
	assert.False(t, present)
	_, present = m["addresses"]
	assert.False(t, present)
}

func TestGeneralizeAccessorPriority(t *testing.T) {
	got, err := Generalize(counter{Count: 3})
	require.NoError(t, err)
	m := got.(map[string]any)
	assert.Equal(t, 30, m["count"])
}

func TestGeneralizeCycle(t *testing.T) {
	a := &node{Name: "a"}
	a.Next = a

	got, err := Generalize(a)
	require.NoError(t, err)
	m := got.(map[string]any)

	assert.Equal(t, "a", m["name"])
	next, ok := m["next"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, reflect.ValueOf(m).Pointer(), reflect.ValueOf(next).Pointer(),
		"the cycle must close on the same mapping, not a copy")
}

func TestGeneralizeTypeLiteral(t *testing.T) {
	got, err := Generalize(reflect.TypeOf(warehouse.Order{}))
	require.NoError(t, err)
	assert.Equal(t, "generic-caster/warehouse.Order", got)
}

func TestGeneralizeAll(t *testing.T) {
	got, err := GeneralizeAll([]any{1, "two", warehouse.StatusPaid})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "two", "paid"}, got)
}
