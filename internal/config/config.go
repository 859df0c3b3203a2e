// Package config loads the sample inputs used by the lvrec demonstrations.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "LVREC_CONFIG"

// MaxNaiveFibonacci caps n for the non-memoized Fibonacci demo; beyond it the
// exponential call count makes the demo look hung.
const MaxNaiveFibonacci = 40

// MaxLinearDepth caps every sample whose demo recurses once per unit of
// input (sum length, factorial n, memoized fibonacci n, power exponent,
// reverse length in runes). Binary search and merge sort recurse O(log n)
// deep and flatten depth is bounded by the YAML nesting, so they are not capped.
const MaxLinearDepth = 100_000

// ErrInvalidConfig indicates sample inputs the demonstrations cannot use.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds one sample input per demonstration.
type Config struct {
	Sum          SumConfig          `yaml:"sum"`
	Factorial    FactorialConfig    `yaml:"factorial"`
	Fibonacci    FibonacciConfig    `yaml:"fibonacci"`
	Reverse      ReverseConfig      `yaml:"reverse"`
	BinarySearch BinarySearchConfig `yaml:"binary_search"`
	Power        PowerConfig        `yaml:"power"`
	Flatten      FlattenConfig      `yaml:"flatten"`
	GCD          GCDConfig          `yaml:"gcd"`
	MergeSort    MergeSortConfig    `yaml:"merge_sort"`
}

// SumConfig configures the Sum demo.
type SumConfig struct {
	Values []int `yaml:"values"`
	Index  int   `yaml:"index"` // start index, 0 sums everything
}

type FactorialConfig struct {
	N int `yaml:"n"`
}

// FibonacciConfig configures the Fibonacci demo. Memo switches to the
// memoized variant and lifts the MaxNaiveFibonacci cap.
type FibonacciConfig struct {
	N    int  `yaml:"n"`
	Memo bool `yaml:"memo"`
}

type ReverseConfig struct {
	Text string `yaml:"text"`
}

// BinarySearchConfig configures the BinarySearch demo. Values must be sorted ascending.
type BinarySearchConfig struct {
	Values []int `yaml:"values"`
	Target int   `yaml:"target"`
}

type PowerConfig struct {
	Base     int `yaml:"base"`
	Exponent int `yaml:"exponent"`
}

// FlattenConfig configures the Flatten demo. YAML sequences nest naturally,
// e.g. items: [1, [2, [3, 4], 5], 6].
type FlattenConfig struct {
	Items    []any `yaml:"items"`
	MaxDepth int   `yaml:"max_depth"` // negative disables the limit
}

type GCDConfig struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

type MergeSortConfig struct {
	Values []int `yaml:"values"`
}

// DefaultConfig returns the classic sample inputs.
func DefaultConfig() *Config {
	return &Config{
		Sum:          SumConfig{Values: []int{1, 2, 3, 4, 5}},
		Factorial:    FactorialConfig{N: 5},
		Fibonacci:    FibonacciConfig{N: 10},
		Reverse:      ReverseConfig{Text: "recursion"},
		BinarySearch: BinarySearchConfig{Values: []int{1, 2, 3, 4, 5, 6, 7}, Target: 4},
		Power:        PowerConfig{Base: 2, Exponent: 10},
		Flatten: FlattenConfig{
			Items:    []any{1, []any{2, []any{3, 4}, 5}, 6},
			MaxDepth: -1,
		},
		GCD:       GCDConfig{A: 48, B: 18},
		MergeSort: MergeSortConfig{Values: []int{5, 2, 9, 1, 5, 6}},
	}
}

// Load reads a YAML file over the defaults: keys absent from the file keep
// their default value. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg.Validate()
}

// ResolvePath returns flagPath if set, else the value of EnvPath.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	return os.Getenv(EnvPath)
}

// Validate reports inputs the demonstrations cannot run on. Values the
// library itself rejects (negative factorial, negative exponent) are left
// for the library to report.
func (c *Config) Validate() error {
	if !slices.IsSorted(c.BinarySearch.Values) {
		return fmt.Errorf("binary_search.values must be sorted ascending: %w", ErrInvalidConfig)
	}
	if !c.Fibonacci.Memo && c.Fibonacci.N > MaxNaiveFibonacci {
		return fmt.Errorf("fibonacci.n=%d above %d needs memo: true: %w",
			c.Fibonacci.N, MaxNaiveFibonacci, ErrInvalidConfig)
	}

	linear := []struct {
		key string
		n   int
	}{
		{"sum.values length", len(c.Sum.Values)},
		{"factorial.n", c.Factorial.N},
		{"fibonacci.n", c.Fibonacci.N},
		{"power.exponent", c.Power.Exponent},
		{"reverse.text length", utf8.RuneCountInString(c.Reverse.Text)},
	}
	for _, l := range linear {
		if l.n > MaxLinearDepth {
			return fmt.Errorf("%s=%d above %d would exhaust the stack: %w",
				l.key, l.n, MaxLinearDepth, ErrInvalidConfig)
		}
	}

	return nil
}
