package numeric

import (
	"fmt"
	"math/big"
)

// Factorial returns n! computed by the recursion n! = n·(n−1)!.
//
// Base case: n ∈ {0, 1} → 1.
//
// Errors:
//   - ErrNegativeArgument if n < 0.
//   - ErrOverflow if n > MaxFactorialArg (21! exceeds uint64).
//
// Complexity: Time O(n), Stack O(n).
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrNegativeArgument)
	}
	if n > MaxFactorialArg {
		return 0, fmt.Errorf("Factorial(%d): exceeds uint64, use FactorialBig: %w", n, ErrOverflow)
	}

	return factorial(uint64(n)), nil
}

// factorial assumes n has been validated.
func factorial(n uint64) uint64 {
	if n <= 1 {
		return 1
	}

	return n * factorial(n-1)
}

// FactorialBig returns n! as an arbitrary-precision integer using the same
// recursion as Factorial. It has no upper bound other than stack depth.
//
// Errors:
//   - ErrNegativeArgument if n < 0.
//
// Complexity: Time O(n·M(n log n)) where M is big-integer multiplication, Stack O(n).
func FactorialBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("FactorialBig(%d): %w", n, ErrNegativeArgument)
	}

	return factorialBig(int64(n)), nil
}

func factorialBig(n int64) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	rest := factorialBig(n - 1)

	return rest.Mul(rest, big.NewInt(n))
}
