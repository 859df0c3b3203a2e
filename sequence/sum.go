package sequence

import (
	"fmt"

	"github.com/katalvlaran/lvrec/numeric"
)

// Sum returns the total of all elements of xs; Sum of an empty or nil
// slice is 0.
//
// Complexity: Time O(n), Stack O(n).
func Sum[T numeric.Number](xs []T) T {
	return sumFrom(xs, 0)
}

// SumFrom returns xs[index] + xs[index+1] + … + xs[len(xs)-1].
// index == len(xs) is the empty remainder and yields 0.
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index > len(xs).
func SumFrom[T numeric.Number](xs []T, index int) (T, error) {
	if index < 0 || index > len(xs) {
		var zero T
		return zero, fmt.Errorf("SumFrom: index %d not in [0, %d]: %w", index, len(xs), ErrIndexOutOfRange)
	}

	return sumFrom(xs, index), nil
}

func sumFrom[T numeric.Number](xs []T, index int) T {
	if index == len(xs) {
		return 0
	}

	return xs[index] + sumFrom(xs, index+1)
}
