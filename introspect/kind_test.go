package introspect_test

import (
	"fmt"
	"reflect"
	"time"

	"generic-caster/introspect"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(introspect.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(introspect.FromReflectType(reflect.TypeOf("")))
	fmt.Println(introspect.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(introspect.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(introspect.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(introspect.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(introspect.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindEnum(0)
}

func ExampleIsPrimitive() {
	type Celsius float64
	type Box struct{}

	fmt.Println(introspect.IsPrimitive(reflect.TypeOf(42)))
	fmt.Println(introspect.IsPrimitive(reflect.TypeOf(Celsius(0))))
	fmt.Println(introspect.IsPrimitive(reflect.TypeOf(time.Now())))
	fmt.Println(introspect.IsPrimitive(reflect.TypeOf(Box{})))
	fmt.Println(introspect.IsPrimitive(reflect.TypeOf([]int{})))
	// Output:
	// true
	// true
	// true
	// false
	// false
}

func ExampleIsBean() {
	type Box struct{}

	fmt.Println(introspect.IsBean(reflect.TypeOf(Box{})))
	fmt.Println(introspect.IsBean(reflect.TypeOf(&Box{})))
	fmt.Println(introspect.IsBean(reflect.TypeOf(time.Now())))
	fmt.Println(introspect.IsBean(reflect.TypeOf(map[string]int{})))
	// Output:
	// true
	// true
	// false
	// false
}
