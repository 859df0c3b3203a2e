package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvrec/numeric"
)

var fibFirst = []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

func TestFibonacci_Sequence(t *testing.T) {
	for n, want := range fibFirst {
		assert.Equal(t, want, numeric.Fibonacci(n), "Fibonacci(%d)", n)
	}
}

// TestFibonacci_NonPositive covers the n ≤ 0 base case.
func TestFibonacci_NonPositive(t *testing.T) {
	assert.Equal(t, uint64(0), numeric.Fibonacci(0))
	assert.Equal(t, uint64(0), numeric.Fibonacci(-1))
	assert.Equal(t, uint64(0), numeric.Fibonacci(-42))
}

// TestFibonacciMemo_MatchesNaive: memoization must not change any output.
func TestFibonacciMemo_MatchesNaive(t *testing.T) {
	for n := -3; n <= 25; n++ {
		assert.Equal(t, numeric.Fibonacci(n), numeric.FibonacciMemo(n), "n=%d", n)
	}
}

// TestFibonacciMemo_Large runs an index the naive recursion could not reach in time.
func TestFibonacciMemo_Large(t *testing.T) {
	assert.Equal(t, uint64(12586269025), numeric.FibonacciMemo(50))
	assert.Equal(t, uint64(12200160415121876738), numeric.FibonacciMemo(93))
}
