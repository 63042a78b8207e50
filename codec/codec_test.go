package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"generic-caster/caster"
	"generic-caster/generic"
	"generic-caster/warehouse"
)

func TestRoundTripPrimitives(t *testing.T) {
	cases := []any{nil, "hello", true, 3.25}
	for _, v := range cases {
		data, err := Marshal(v)
		require.NoError(t, err)
		back, err := Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

func TestSetsFlattenToArrays(t *testing.T) {
	data, err := Marshal(generic.SetOf("a", "b"))
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, back)
}

func TestOrderedMappingsKeepOrderOnTheWire(t *testing.T) {
	om := generic.NewOrderedMap()
	om.Set("first", "1")
	om.Set("second", "2")

	data, err := Marshal(om)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"first": "1", "second": "2"}, back)
}

func TestWireRoundTripRealizesBean(t *testing.T) {
	product := warehouse.Product{
		ID: 5, SKU: "AN-001", Name: "Anvil", Price: 999,
		Stock: 3, IsActive: true, Weight: 9000,
	}

	g, err := caster.Generalize(product)
	require.NoError(t, err)

	data, err := Marshal(g)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	// the embedded class tag alone drives reconstruction
	back, err := caster.Realize(decoded, caster.TypeDesc{})
	require.NoError(t, err)
	assert.Equal(t, product, back)
}
