package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvrec/search"
)

func ExampleBinarySearch() {
	xs := []int{1, 2, 3, 4, 5, 6, 7}
	fmt.Println(search.BinarySearch(xs, 4))
	fmt.Println(search.BinarySearch(xs, 8))

	// Output:
	// 3
	// -1
}
