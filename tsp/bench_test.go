package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourtree/tsp"
)

func benchmarkSolve(b *testing.B, n int, opts tsp.Options) {
	root := unitTree(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Solve rewrites every ring link, so the tree is reusable.
		if _, err := tsp.Solve(root, 150, procsDet, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Linear_16k(b *testing.B) {
	benchmarkSolve(b, 1<<14, tsp.DefaultOptions())
}

func BenchmarkSolve_RTree_16k(b *testing.B) {
	opts := tsp.DefaultOptions()
	opts.Nearest = tsp.NearestRTree
	benchmarkSolve(b, 1<<14, opts)
}

func BenchmarkSolve_Parallel_16k(b *testing.B) {
	opts := tsp.DefaultOptions()
	opts.Parallel = true
	benchmarkSolve(b, 1<<14, opts)
}
