package sequence

import (
	"fmt"
	"reflect"
)

// sliceKey identifies a slice currently on the recursion stack.
// Two slice headers with the same backing pointer, length and type are the
// same sequence for cycle purposes.
type sliceKey struct {
	ptr uintptr
	n   int
	typ reflect.Type
}

// flattener encapsulates state during a Flatten traversal.
type flattener struct {
	opts    FlattenOptions
	onStack map[sliceKey]bool // Gray set: slices being expanded
	out     []any
}

// Flatten returns every leaf of items in depth-first, left-to-right order.
//
// An element is a nested sequence if its dynamic type is a slice or an array
// (of any element type); it is expanded recursively in place. Every other
// value, nil included, is appended as a leaf. Empty nested sequences
// contribute nothing. The result is never nil.
//
// Errors:
//   - ErrMaxDepthExceeded if nesting goes deeper than WithMaxDepth.
//   - ErrCycleDetected if a slice contains itself.
//   - ctx.Err() if the context passed via WithContext is done.
//
// Complexity: Time O(N) where N counts every leaf and every nested sequence,
// Stack O(depth).
func Flatten(items []any, opts ...Option) ([]any, error) {
	fopts := DefaultOptions()
	for _, fn := range opts {
		fn(&fopts)
	}

	f := &flattener{
		opts:    fopts,
		onStack: make(map[sliceKey]bool),
		out:     make([]any, 0, len(items)),
	}
	if err := f.walk(reflect.ValueOf(items), 0); err != nil {
		return nil, err
	}

	return f.out, nil
}

// FlattenAs flattens items like Flatten and converts every leaf to T.
//
// Errors:
//   - ErrLeafType if a leaf's dynamic type is not T (a nil leaf only
//     matches when T is an interface type).
//   - any error returned by Flatten.
func FlattenAs[T any](items []any, opts ...Option) ([]T, error) {
	leaves, err := Flatten(items, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(leaves))
	for i, leaf := range leaves {
		if leaf == nil {
			if reflect.TypeFor[T]().Kind() == reflect.Interface {
				var zero T
				out = append(out, zero)
				continue
			}
			return nil, fmt.Errorf("FlattenAs: leaf %d is nil, want %s: %w", i, reflect.TypeFor[T](), ErrLeafType)
		}
		v, ok := leaf.(T)
		if !ok {
			return nil, fmt.Errorf("FlattenAs: leaf %d has type %T, want %s: %w", i, leaf, reflect.TypeFor[T](), ErrLeafType)
		}
		out = append(out, v)
	}

	return out, nil
}

// walk expands seq (a slice or array) found at the given nesting depth.
func (f *flattener) walk(seq reflect.Value, depth int) error {
	// 1. Cancellation check
	select {
	case <-f.opts.Ctx.Done():
		return f.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if f.opts.MaxDepth >= 0 && depth > f.opts.MaxDepth {
		return fmt.Errorf("Flatten: nesting depth %d exceeds limit %d: %w", depth, f.opts.MaxDepth, ErrMaxDepthExceeded)
	}

	// 3. Mark Gray; a slice already on the stack means we are inside it
	if seq.Kind() == reflect.Slice && seq.Len() > 0 {
		key := sliceKey{ptr: seq.Pointer(), n: seq.Len(), typ: seq.Type()}
		if f.onStack[key] {
			return fmt.Errorf("Flatten: %s at depth %d contains itself: %w", seq.Type(), depth, ErrCycleDetected)
		}
		f.onStack[key] = true
		defer delete(f.onStack, key)
	}

	// 4. Expand elements left to right
	for i := 0; i < seq.Len(); i++ {
		elem := seq.Index(i)
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}

		switch elem.Kind() {
		case reflect.Slice, reflect.Array:
			if err := f.walk(elem, depth+1); err != nil {
				return err
			}
		case reflect.Interface:
			// nil interface element
			f.out = append(f.out, nil)
		default:
			f.out = append(f.out, elem.Interface())
		}
	}

	return nil
}
