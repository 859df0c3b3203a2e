package search

import (
	"cmp"
	"fmt"
)

// BinarySearch returns an index i with xs[i] == target, or NotFound.
// It searches the whole slice, i.e. BinarySearchRange(xs, target, 0, len(xs)-1).
func BinarySearch[T cmp.Ordered](xs []T, target T) int {
	return binarySearch(xs, target, 0, len(xs)-1)
}

// BinarySearchRange searches the closed interval [left, right] of xs.
// An empty interval (left > right) returns NotFound without error.
//
// Errors:
//   - ErrIndexOutOfRange if left <= right and either bound lies outside [0, len(xs)-1].
func BinarySearchRange[T cmp.Ordered](xs []T, target T, left, right int) (int, error) {
	if left > right {
		return NotFound, nil
	}
	if left < 0 || right >= len(xs) {
		return NotFound, fmt.Errorf("BinarySearchRange: [%d, %d] outside [0, %d]: %w",
			left, right, len(xs)-1, ErrIndexOutOfRange)
	}

	return binarySearch(xs, target, left, right), nil
}

func binarySearch[T cmp.Ordered](xs []T, target T, left, right int) int {
	if left > right {
		return NotFound
	}
	mid := (left + right) / 2
	switch {
	case xs[mid] == target:
		return mid
	case xs[mid] < target:
		return binarySearch(xs, target, mid+1, right)
	default:
		return binarySearch(xs, target, left, mid-1)
	}
}
