// Package numeric implements classic recursive computations over integers
// and other numeric types: factorial, Fibonacci, exponentiation and the
// greatest common divisor.
//
// What:
//
//   - Factorial(n):      n! = n·(n−1)!, with 0! = 1! = 1
//   - FactorialBig(n):   the same recursion over math/big, no overflow ceiling
//   - Fibonacci(n):      F(n) = F(n−1) + F(n−2), naive double recursion
//   - FibonacciMemo(n):  identical results, memoized per call
//   - Power(x, n):       xⁿ = x·xⁿ⁻¹, with x⁰ = 1 (including 0⁰)
//   - GCD(a, b):         Euclid, gcd(a, b) = gcd(b, a mod b), gcd(a, 0) = a
//
// Why:
//
//	Each function keeps the textbook recursive formulation so the call
//	structure mirrors the mathematical definition. None of them keeps
//	state between calls; all are safe for concurrent use.
//
// Complexity:
//
//   - Factorial:      Time O(n),   Stack O(n)
//   - Fibonacci:      Time O(φⁿ),  Stack O(n)
//   - FibonacciMemo:  Time O(n),   Stack O(n), Memory O(n)
//   - Power:          Time O(n),   Stack O(n)
//   - GCD:            Time O(log min(a,b)), Stack O(log min(a,b))
//
// Errors:
//
//   - ErrNegativeArgument  n < 0 for Factorial, FactorialBig or Power
//   - ErrOverflow          Factorial result does not fit in uint64 (n > 20)
//
// Fibonacci and GCD are total and never fail.
package numeric
