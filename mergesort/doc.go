// Package mergesort implements top-down recursive merge sort.
//
// What:
//
//	MergeSort splits xs at len/2, sorts both halves recursively and joins
//	them with Merge. Slices of length ≤ 1 are already sorted and returned
//	as copies.
//
// Tie-break:
//
//	Merge takes the left front only when it is strictly smaller than the
//	right front; on equality the right element is emitted first. Equal
//	elements that end up in different halves therefore swap their relative
//	order, so the sort is not stable. MergeFunc and MergeSortFunc keep the
//	same rule for a custom comparator (left only when cmp(l, r) < 0).
//
// Guarantees:
//
//   - the input is never modified; every call returns a new slice
//   - the result is a permutation of the input in non-decreasing order
//   - MergeSort(MergeSort(xs)) equals MergeSort(xs)
//
// Complexity: Time O(n log n), Memory O(n log n) in total allocations, Stack O(log n).
package mergesort
