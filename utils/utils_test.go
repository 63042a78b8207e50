package utils_test

import (
	"fmt"
	"path"

	"generic-caster/utils"
)

func ExampleIsInRange() {
	fmt.Println(utils.IsInRange(0, 5, 10))
	fmt.Println(utils.IsInRange(0.0, -0.5, 1.0))
	fmt.Println(utils.IsInRange(1, 1, 1))
	// Output:
	// true
	// false
	// true
}

func ExampleSecond() {
	fmt.Println(utils.Second(path.Split("a/b/pkg")))
	// Output:
	// pkg
}

func ExampleUnpack2() {
	first, second := utils.Unpack2([]string{"local", "domain"})
	fmt.Println(first, second)

	first, second = utils.Unpack2([]string{"only"})
	fmt.Printf("%q %q\n", first, second)
	// Output:
	// local domain
	// "only" ""
}
