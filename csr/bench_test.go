// Package csr_test provides benchmarks for the construction pipeline.
package csr_test

import (
	"fmt"
	"testing"

	"github.com/dengelt/graph/csr"
)

// BenchmarkBuildUndirected measures a full pipeline run at increasing
// worker counts over a fixed pseudo-random edge list.
func BenchmarkBuildUndirected(b *testing.B) {
	el := randomEdges(42, 10_000, 200_000)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := csr.BuildUndirected(el, csr.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBuildDirected measures the two-sided build, whose Outgoing and
// Incoming pipelines run concurrently.
func BenchmarkBuildDirected(b *testing.B) {
	el := randomEdges(42, 10_000, 200_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := csr.BuildDirected(el); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbors measures the zero-copy read path on a finished graph.
func BenchmarkNeighbors(b *testing.B) {
	el := randomEdges(42, 10_000, 200_000)
	g, err := csr.BuildUndirected(el)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	var total int
	for i := 0; i < b.N; i++ {
		total += len(g.Neighbors(uint32(i % g.NodeCount())))
	}
	_ = total
}
