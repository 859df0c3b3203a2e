// Package search implements recursive binary search over ascending slices.
//
// What:
//
//	BinarySearch halves the closed interval [left, right] on every call:
//	mid = (left+right)/2; equal → mid; xs[mid] < target → [mid+1, right];
//	otherwise → [left, mid−1]; an empty interval (left > right) → −1.
//
// Contract:
//
//   - xs must be sorted ascending. This precondition is not checked; on
//     unsorted input the result is unspecified (but always −1 or a valid index).
//   - With duplicates, any index holding the target may be returned.
//
// Complexity: Time O(log n), Stack O(log n).
//
// Errors:
//
//   - ErrIndexOutOfRange  BinarySearchRange bounds outside [0, len(xs)−1]
package search
