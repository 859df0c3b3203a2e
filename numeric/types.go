// Package numeric defines the numeric constraints and sentinel errors
// shared by the recursive computations.
package numeric

import "errors"

// Signed matches every signed integer type, including named ones.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer type, including named ones.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float matches any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number matches any type that supports +, * and ordering.
type Number interface {
	Integer | Float
}

// MaxFactorialArg is the largest n for which n! fits in a uint64.
const MaxFactorialArg = 20

var (
	// ErrNegativeArgument indicates a negative n was passed where only
	// non-negative values are defined (Factorial, FactorialBig, Power).
	ErrNegativeArgument = errors.New("numeric: argument must be non-negative")

	// ErrOverflow indicates the exact result does not fit in the return type.
	ErrOverflow = errors.New("numeric: result overflows")
)
