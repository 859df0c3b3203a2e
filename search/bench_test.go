package search_test

import (
	"testing"

	"github.com/katalvlaran/lvrec/search"
)

func BenchmarkBinarySearch_1M(b *testing.B) {
	xs := make([]int, 1<<20)
	for i := range xs {
		xs[i] = 2 * i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.BinarySearch(xs, 2*(i%len(xs)))
	}
}
