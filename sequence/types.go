// Package sequence defines options and sentinel errors for the sequence
// algorithms, mainly the traversal controls of Flatten.
package sequence

import (
	"context"
	"errors"
)

var (
	// ErrIndexOutOfRange indicates a start index outside [0, len(xs)].
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrMaxDepthExceeded indicates nesting deeper than the configured MaxDepth.
	ErrMaxDepthExceeded = errors.New("sequence: maximum nesting depth exceeded")

	// ErrCycleDetected indicates a nested slice that contains itself.
	ErrCycleDetected = errors.New("sequence: cycle detected in nested sequence")

	// ErrLeafType indicates a flattened leaf whose dynamic type is not the
	// type requested from FlattenAs.
	ErrLeafType = errors.New("sequence: unexpected leaf type")
)

// Option configures optional behavior of Flatten.
type Option func(*FlattenOptions)

// FlattenOptions holds the traversal controls for Flatten.
type FlattenOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, is the deepest nesting level accepted.
	// The top-level slice is depth 0, so a limit of 0 admits only flat input.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns FlattenOptions with a background context and no depth limit.
func DefaultOptions() FlattenOptions {
	return FlattenOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context checked on every frame.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *FlattenOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits how deep nested sequences may go.
// A negative limit disables the check.
func WithMaxDepth(limit int) Option {
	return func(o *FlattenOptions) {
		o.MaxDepth = limit
	}
}
