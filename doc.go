// Package lvrec is a small playground of classic recursive algorithms, each
// written in its textbook recursive form, from one-line base cases to
// divide-and-conquer sorting.
//
// 🚀 What is lvrec?
//
//	A pure-Go library of nine stand-alone recursive computations:
//		• Numbers: factorial, Fibonacci, exponentiation, GCD
//		• Sequences: sum, string reversal, flattening of nested slices
//		• Search: binary search over sorted slices
//		• Sorting: top-down merge sort with an explicit merge step
//
// ✨ Why lvrec?
//
//   - Readable – the code mirrors the recurrence it implements
//   - Honest contracts – invalid arguments return sentinel errors, never loop forever
//   - Pure – no shared state, inputs are never mutated, results never alias inputs
//   - Generic – numeric and ordered constraints instead of one type per function
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/   — Factorial, FactorialBig, Fibonacci, FibonacciMemo, Power, GCD
//	sequence/  — Sum, SumFrom, Reverse, Flatten, FlattenAs
//	search/    — BinarySearch, BinarySearchRange
//	mergesort/ — MergeSort, MergeSortFunc, Merge, MergeFunc
//
// The lvrec command (cmd/lvrec) runs every algorithm on sample inputs:
//
//	$ lvrec demo
//	Sum: 15
//	Factorial: 120
//	...
//	Merge Sort: [1 2 5 5 6 9]
//
// Recursion depth grows with the input (linearly for sum, reversal, power and
// factorial, logarithmically for binary search and merge sort). Flatten, the
// one algorithm fed untrusted structure, accepts a depth limit and a context.
//
//	go get github.com/katalvlaran/lvrec
package lvrec
