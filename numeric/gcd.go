package numeric

// GCD returns the greatest common divisor of a and b by Euclid's recursion
// gcd(a, b) = gcd(b, a mod b), with gcd(a, 0) = a and therefore gcd(0, 0) = 0.
//
// Euclid runs on the arguments as given and only the result is made
// non-negative, so negative arguments (the minimum value of a signed type
// included) yield the same divisor as their absolute values. The single
// unrepresentable case is a divisor equal to |min|, e.g. GCD(math.MinInt64, 0),
// which is returned unchanged.
//
// Complexity: Time O(log min(|a|, |b|)), Stack O(log min(|a|, |b|)).
func GCD[T Integer](a, b T) T {
	return abs(gcd(a, b))
}

func gcd[T Integer](a, b T) T {
	if b == 0 {
		return a
	}

	return gcd(b, a%b)
}

// abs is a no-op for unsigned T, since v < 0 never holds.
func abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
