package fixedarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/fixedarray"
)

// ExampleFromValues shows zero padding and the checked accessor.
func ExampleFromValues() {
	a, err := fixedarray.FromValues(4, 1, 2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a)

	_, err = a.At(4)
	fmt.Println(err)
	// Output:
	// [1 2 3 0]
	// Array.At(4): fixedarray: index out of range
}

// ExampleArray_Swap exchanges two arrays of the same length.
func ExampleArray_Swap() {
	a := fixedarray.Of(1, 2, 3)
	b := fixedarray.Of(4, 5, 6)
	_ = a.Swap(b)
	fmt.Println(a, b, fixedarray.Less(b, a))
	// Output:
	// [4 5 6] [1 2 3] true
}
