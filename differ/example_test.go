package differ_test

import (
	"fmt"

	"github.com/katalvlaran/matdiff/differ"
	"github.com/katalvlaran/matdiff/matrix"
)

// ExampleMatricesDiffer skips recomputation when a transform did not move.
func ExampleMatricesDiffer() {
	prev := matrix.Translation(10, 0, 0).Flat()
	next := matrix.Translation(10, 0, 0).Flat()
	fmt.Println(differ.MatricesDiffer(prev, next))

	next = matrix.Translation(12, 0, 0).Flat()
	fmt.Println(differ.MatricesDiffer(prev, next))
	fmt.Println(differ.Indices(prev, next))

	// Output:
	// false
	// true
	// [12]
}
