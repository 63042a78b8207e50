package caster

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeDescArgs(t *testing.T) {
	d := TypeFor[map[string][]int]()
	assert.Equal(t, reflect.TypeOf(""), d.ArgAt(0).Type)
	assert.Equal(t, reflect.TypeOf([]int{}), d.ArgAt(1).Type)

	// explicit arguments win over the container's own parameters
	d = Desc(reflect.TypeOf([]any{}), TypeFor[int64]())
	assert.Equal(t, reflect.TypeOf(int64(0)), d.ArgAt(0).Type)

	assert.False(t, TypeDesc{}.Known())
	assert.False(t, TypeDesc{}.ArgAt(0).Known())
	assert.False(t, TypeFor[int]().ArgAt(0).Known())
}
