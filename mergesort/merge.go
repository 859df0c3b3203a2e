package mergesort

import "cmp"

// Merge combines two ascending slices into one new ascending slice.
// On equal fronts the element from right is taken first.
func Merge[T cmp.Ordered](left, right []T) []T {
	return MergeFunc(left, right, compareOrdered[T])
}

// compareOrdered uses the < and > operators directly, so NaN compares
// equal to everything instead of sorting first as in cmp.Compare.
func compareOrdered[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MergeFunc is Merge with a comparator following the cmp.Compare contract
// (negative, zero, positive). The left front is taken only when
// compare(l, r) < 0.
func MergeFunc[T any](left, right []T, compare func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) < 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
