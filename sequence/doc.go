// Package sequence implements recursive algorithms over linear and nested
// sequences: summation, string reversal and flattening of arbitrarily
// nested slices.
//
// What:
//
//   - Sum / SumFrom: xs[i] + Sum(xs[i+1:]), empty remainder → 0.
//   - Reverse: Reverse(s[1:]) + s[0], rune by rune, so multi-byte
//     characters survive intact.
//   - Flatten / FlattenAs: depth-first, left-to-right collection of every
//     leaf in a nested []any. Any slice or array element counts as a nested
//     sequence; strings, maps, pointers, nil and scalars are leaves.
//
// Flatten walks untrusted structure, so it borrows the traversal controls of
// a depth-first search:
//
//   - WithContext(ctx)     cancellation, checked on every recursion frame
//   - WithMaxDepth(limit)  reject nesting deeper than limit (ErrMaxDepthExceeded)
//   - a slice that contains itself is reported as ErrCycleDetected instead
//     of recursing until the stack is exhausted
//
// Complexity:
//
//   - Sum:     Time O(n),  Stack O(n)
//   - Reverse: Time O(n²) (string concatenation per frame), Stack O(n)
//   - Flatten: Time O(N) over all nodes, Stack O(depth)
//
// Errors:
//
//   - ErrIndexOutOfRange   SumFrom start index outside [0, len(xs)]
//   - ErrMaxDepthExceeded  nesting deeper than WithMaxDepth
//   - ErrCycleDetected     self-referencing nested slice
//   - ErrLeafType          FlattenAs leaf not assignable to T
//   - context errors       from WithContext
//
// All inputs are left untouched; every returned slice is freshly allocated.
package sequence
