package mergesort

import "cmp"

// MergeSort returns a new slice holding the elements of xs in ascending order.
func MergeSort[T cmp.Ordered](xs []T) []T {
	return MergeSortFunc(xs, compareOrdered[T])
}

// MergeSortFunc sorts with a comparator following the cmp.Compare contract.
// The tie-break of MergeFunc applies at every level.
func MergeSortFunc[T any](xs []T, compare func(a, b T) int) []T {
	if len(xs) <= 1 {
		out := make([]T, len(xs))
		copy(out, xs)
		return out
	}
	mid := len(xs) / 2
	left := MergeSortFunc(xs[:mid], compare)
	right := MergeSortFunc(xs[mid:], compare)

	return MergeFunc(left, right, compare)
}
