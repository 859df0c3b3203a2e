// Package demo runs the lvrec algorithms on sample inputs and renders the results.
package demo

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/lvrec/internal/config"
	"github.com/katalvlaran/lvrec/mergesort"
	"github.com/katalvlaran/lvrec/numeric"
	"github.com/katalvlaran/lvrec/search"
	"github.com/katalvlaran/lvrec/sequence"
)

// ErrUnknownDemo indicates a demo key that is not in the catalog.
var ErrUnknownDemo = errors.New("demo: unknown demo")

// Demo is one named demonstration. Run formats the algorithm's result for display.
type Demo struct {
	Key  string // selector used by --only, e.g. "binary_search"
	Name string // display name, e.g. "Binary Search"
	Run  func(ctx context.Context, cfg *config.Config) (string, error)
}

// Catalog returns every demonstration in display order.
func Catalog() []Demo {
	return []Demo{
		{Key: "sum", Name: "Sum", Run: runSum},
		{Key: "factorial", Name: "Factorial", Run: runFactorial},
		{Key: "fibonacci", Name: "Fibonacci", Run: runFibonacci},
		{Key: "reverse", Name: "Reverse", Run: runReverse},
		{Key: "binary_search", Name: "Binary Search", Run: runBinarySearch},
		{Key: "power", Name: "Power", Run: runPower},
		{Key: "flatten", Name: "Flatten", Run: runFlatten},
		{Key: "gcd", Name: "GCD", Run: runGCD},
		{Key: "merge_sort", Name: "Merge Sort", Run: runMergeSort},
	}
}

// Keys lists the catalog keys in display order.
func Keys() []string {
	catalog := Catalog()
	keys := make([]string, len(catalog))
	for i, d := range catalog {
		keys[i] = d.Key
	}

	return keys
}

// Select returns the demos named by keys, in catalog order. An empty keys
// selects the whole catalog. Keys are matched case-insensitively and '-' is
// accepted for '_'.
func Select(keys []string) ([]Demo, error) {
	catalog := Catalog()
	if len(keys) == 0 {
		return catalog, nil
	}

	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[normalizeKey(k)] = true
	}

	selected := make([]Demo, 0, len(wanted))
	for _, d := range catalog {
		if wanted[d.Key] {
			selected = append(selected, d)
			delete(wanted, d.Key)
		}
	}
	if len(wanted) > 0 {
		unknown := slices.Sorted(maps.Keys(wanted))
		return nil, fmt.Errorf("%s (known: %s): %w",
			strings.Join(unknown, ", "), strings.Join(Keys(), ", "), ErrUnknownDemo)
	}

	return selected, nil
}

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(k)), "-", "_")
}

func runSum(_ context.Context, cfg *config.Config) (string, error) {
	v, err := sequence.SumFrom(cfg.Sum.Values, cfg.Sum.Index)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(v), nil
}

func runFactorial(_ context.Context, cfg *config.Config) (string, error) {
	if cfg.Factorial.N > numeric.MaxFactorialArg {
		v, err := numeric.FactorialBig(cfg.Factorial.N)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	v, err := numeric.Factorial(cfg.Factorial.N)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(v), nil
}

func runFibonacci(_ context.Context, cfg *config.Config) (string, error) {
	if cfg.Fibonacci.Memo {
		return fmt.Sprint(numeric.FibonacciMemo(cfg.Fibonacci.N)), nil
	}

	return fmt.Sprint(numeric.Fibonacci(cfg.Fibonacci.N)), nil
}

func runReverse(_ context.Context, cfg *config.Config) (string, error) {
	return sequence.Reverse(cfg.Reverse.Text), nil
}

func runBinarySearch(_ context.Context, cfg *config.Config) (string, error) {
	return fmt.Sprint(search.BinarySearch(cfg.BinarySearch.Values, cfg.BinarySearch.Target)), nil
}

func runPower(_ context.Context, cfg *config.Config) (string, error) {
	v, err := numeric.Power(cfg.Power.Base, cfg.Power.Exponent)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(v), nil
}

func runFlatten(ctx context.Context, cfg *config.Config) (string, error) {
	flat, err := sequence.Flatten(cfg.Flatten.Items,
		sequence.WithContext(ctx),
		sequence.WithMaxDepth(cfg.Flatten.MaxDepth),
	)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(flat), nil
}

func runGCD(_ context.Context, cfg *config.Config) (string, error) {
	return fmt.Sprint(numeric.GCD(cfg.GCD.A, cfg.GCD.B)), nil
}

func runMergeSort(_ context.Context, cfg *config.Config) (string, error) {
	return fmt.Sprint(mergesort.MergeSort(cfg.MergeSort.Values)), nil
}
