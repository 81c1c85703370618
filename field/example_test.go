package field_test

import (
	"fmt"

	"github.com/fumin/srspoly/field"
)

func Example() {
	// (1/2 + 1/3) * 6 == 5
	a := field.NewRat(1, 2)
	b := field.NewRat(1, 3)
	sum := new(field.Rat).Add(a, b)
	six := field.NewRat(6, 1)
	result := new(field.Rat).Mul(sum, six)

	fmt.Println(result)

	// Output:
	// 5
}
