package numeric_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrec/numeric"
)

// TestFactorial_Known checks the first values of the factorial sequence.
func TestFactorial_Known(t *testing.T) {
	cases := []struct {
		n    int
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tc := range cases {
		got, err := numeric.Factorial(tc.n)
		require.NoError(t, err, "Factorial(%d)", tc.n)
		assert.Equal(t, tc.want, got, "Factorial(%d)", tc.n)
	}
}

// TestFactorial_Negative ensures negative n is rejected instead of recursing forever.
func TestFactorial_Negative(t *testing.T) {
	_, err := numeric.Factorial(-1)
	assert.ErrorIs(t, err, numeric.ErrNegativeArgument)
}

// TestFactorial_Overflow ensures 21! is reported instead of wrapping.
func TestFactorial_Overflow(t *testing.T) {
	_, err := numeric.Factorial(numeric.MaxFactorialArg + 1)
	assert.ErrorIs(t, err, numeric.ErrOverflow)
}

// TestFactorial_Recurrence verifies n! = n·(n−1)! across the whole uint64 range.
func TestFactorial_Recurrence(t *testing.T) {
	for n := 1; n <= numeric.MaxFactorialArg; n++ {
		cur, err := numeric.Factorial(n)
		require.NoError(t, err)
		prev, err := numeric.Factorial(n - 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(n)*prev, cur, "n=%d", n)
	}
}

// TestFactorialBig_MatchesFactorial compares both variants where they overlap.
func TestFactorialBig_MatchesFactorial(t *testing.T) {
	for n := 0; n <= numeric.MaxFactorialArg; n++ {
		small, err := numeric.Factorial(n)
		require.NoError(t, err)
		bigVal, err := numeric.FactorialBig(n)
		require.NoError(t, err)
		assert.True(t, bigVal.IsUint64(), "n=%d", n)
		assert.Equal(t, small, bigVal.Uint64(), "n=%d", n)
	}
}

// TestFactorialBig_Large checks a value beyond the uint64 ceiling.
func TestFactorialBig_Large(t *testing.T) {
	got, err := numeric.FactorialBig(25)
	require.NoError(t, err)
	want, ok := new(big.Int).SetString("15511210043330985984000000", 10)
	require.True(t, ok)
	assert.Zero(t, want.Cmp(got), "25! = %s", got)
}

// TestFactorialBig_Negative mirrors the uint64 variant's validation.
func TestFactorialBig_Negative(t *testing.T) {
	got, err := numeric.FactorialBig(-3)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, numeric.ErrNegativeArgument)
}
