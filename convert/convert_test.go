package convert_test

import (
	"reflect"
	"testing"
	"time"

	"generic-caster/convert"
	"generic-caster/introspect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priority int

const (
	low priority = iota + 1
	high
)

func init() {
	introspect.RegisterEnum(map[string]priority{"LOW": low, "HIGH": high})
}

func TestCompatibleIdentity(t *testing.T) {
	got, err := convert.Compatible(42, reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = convert.Compatible("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	got, err = convert.Compatible(nil, reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompatibleNumbers(t *testing.T) {
	cases := []struct {
		name   string
		in     any
		target any
		want   any
	}{
		{"widen int8", int8(5), int64(0), int64(5)},
		{"widen uint16 to int64", uint16(500), int64(0), int64(500)},
		{"int to float64", int32(7), float64(0), float64(7)},
		{"narrow in range", int64(127), int8(0), int8(127)},
		{"float to int truncates", float64(3.9), int(0), int(3)},
		{"uint from int", int(12), uint8(0), uint8(12)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := convert.Compatible(tc.in, reflect.TypeOf(tc.target))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompatibleNumberRangeErrors(t *testing.T) {
	_, err := convert.Compatible(int64(300), reflect.TypeOf(int8(0)))
	assert.ErrorIs(t, err, convert.ErrOutOfRange)

	_, err = convert.Compatible(int(-1), reflect.TypeOf(uint(0)))
	assert.ErrorIs(t, err, convert.ErrOutOfRange)
}

func TestCompatibleText(t *testing.T) {
	got, err := convert.Compatible("41", reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	got, err = convert.Compatible(41, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "41", got)

	got, err = convert.Compatible("2.5", reflect.TypeOf(float32(0)))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), got)

	_, err = convert.Compatible("nope", reflect.TypeOf(0))
	assert.Error(t, err)
}

func TestCompatibleBool(t *testing.T) {
	got, err := convert.Compatible("yes", reflect.TypeOf(false))
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = convert.Compatible(true, reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = convert.Compatible(int8(0), reflect.TypeOf(false))
	require.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestCompatibleTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	got, err := convert.Compatible(ts.Format(time.RFC3339Nano), reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.(time.Time)))

	got, err = convert.Compatible(ts.Unix(), reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.(time.Time)))

	got, err = convert.Compatible("2h45m", reflect.TypeOf(time.Duration(0)))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+45*time.Minute, got)

	got, err = convert.Compatible(1.5, reflect.TypeOf(time.Duration(0)))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, got)
}

func TestCompatibleEnum(t *testing.T) {
	got, err := convert.Compatible("HIGH", reflect.TypeOf(low))
	require.NoError(t, err)
	assert.Equal(t, high, got)

	got, err = convert.Compatible(low, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "LOW", got)

	_, err = convert.Compatible("NONE", reflect.TypeOf(low))
	assert.ErrorIs(t, err, introspect.ErrUnknownEnumName)
}

func TestCategoryMask(t *testing.T) {
	// only safe numeric conversions allowed: narrowing is rejected
	_, err := convert.CompatibleAs(int64(1), reflect.TypeOf(int8(0)), convert.CategorySafeNumber)
	assert.ErrorIs(t, err, convert.ErrIncompatible)

	got, err := convert.CompatibleAs(int8(1), reflect.TypeOf(int64(0)), convert.CategorySafeNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = convert.CompatibleAs("1", reflect.TypeOf(0), convert.CategorySafeNumber)
	assert.ErrorIs(t, err, convert.ErrIncompatible)
}

func TestNamedScalarCast(t *testing.T) {
	type sku string
	got, err := convert.Compatible("a-1", reflect.TypeOf(sku("")))
	require.NoError(t, err)
	assert.Equal(t, sku("a-1"), got)
}
