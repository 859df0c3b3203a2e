package numeric

// Fibonacci returns the n-th Fibonacci number using the naive double
// recursion F(n) = F(n−1) + F(n−2).
//
// Base cases: n ≤ 0 → 0, n = 1 → 1.
//
// The call count grows exponentially; this is the reference formulation,
// not an oversight. Use FibonacciMemo for large n. Results for n > 93
// wrap around uint64.
//
// Complexity: Time O(φⁿ), Stack O(n).
func Fibonacci(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	return Fibonacci(n-1) + Fibonacci(n-2)
}

// FibonacciMemo returns the same values as Fibonacci, but caches every
// intermediate F(k) in a table owned by this call, so each k is computed once.
//
// Complexity: Time O(n), Stack O(n), Memory O(n).
func FibonacciMemo(n int) uint64 {
	if n <= 0 {
		return 0
	}
	memo := make([]uint64, n+1)
	known := make([]bool, n+1)

	return fibMemo(n, memo, known)
}

func fibMemo(n int, memo []uint64, known []bool) uint64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	if known[n] {
		return memo[n]
	}
	memo[n] = fibMemo(n-1, memo, known) + fibMemo(n-2, memo, known)
	known[n] = true

	return memo[n]
}
