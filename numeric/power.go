package numeric

import "fmt"

// Power returns x raised to the non-negative integer power n, computed by
// the linear recursion xⁿ = x·xⁿ⁻¹.
//
// Base case: n = 0 → 1 for every x, including 0⁰ = 1.
//
// Integer results wrap on overflow exactly as repeated multiplication in T
// would; floating-point results follow IEEE-754 (±Inf on overflow).
//
// Errors:
//   - ErrNegativeArgument if n < 0.
//
// Complexity: Time O(n), Stack O(n).
func Power[T Number](x T, n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, fmt.Errorf("Power(%v, %d): %w", x, n, ErrNegativeArgument)
	}

	return power(x, n), nil
}

func power[T Number](x T, n int) T {
	if n == 0 {
		return 1
	}

	return x * power(x, n-1)
}
