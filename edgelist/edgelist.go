package edgelist

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MaxNodeID returns the largest node id referenced by any edge endpoint.
// An empty list reports 0.
// Complexity: O(E)
func (el EdgeList) MaxNodeID() uint32 {
	var max uint32
	for _, e := range el {
		if e.Source > max {
			max = e.Source
		}
		if e.Target > max {
			max = e.Target
		}
	}

	return max
}

// NodeCount returns MaxNodeID()+1, the size of the dense id space the
// edges span, or 0 for an empty list.
// Complexity: O(E)
func (el EdgeList) NodeCount() int {
	if len(el) == 0 {
		return 0
	}

	return int(el.MaxNodeID()) + 1
}

// Degrees computes the per-node count of edge endpoints anchored under dir.
// The result has length nodeCount; degrees[i] is the number of endpoints
// node i anchors. Self-loops and parallel edges count like any other edge,
// so an Undirected self-loop contributes 2 to its node.
//
// Counting runs on concurrent workers; each endpoint is tallied with an
// atomic add, so the result is identical for any worker count.
// Complexity: O(E + V)
func (el EdgeList) Degrees(nodeCount int, dir Direction) []uint32 {
	degrees := make([]uint32, nodeCount)

	switch dir {
	case Outgoing:
		el.ForEachParallel(0, func(s, _ uint32) {
			atomic.AddUint32(&degrees[s], 1)
		})
	case Incoming:
		el.ForEachParallel(0, func(_, t uint32) {
			atomic.AddUint32(&degrees[t], 1)
		})
	case Undirected:
		el.ForEachParallel(0, func(s, t uint32) {
			atomic.AddUint32(&degrees[s], 1)
			atomic.AddUint32(&degrees[t], 1)
		})
	}

	return degrees
}

// ForEachParallel invokes fn once per edge, partitioning the list into at
// most workers contiguous chunks processed by one goroutine each and
// returning only after every chunk has finished. workers <= 0 selects
// runtime.GOMAXPROCS(0).
//
// fn must be safe for concurrent invocation; edges within a chunk are
// visited in order, but chunks run concurrently and no cross-chunk order
// exists.
// Complexity: O(E/workers) per worker
func (el EdgeList) ForEachParallel(workers int, fn func(source, target uint32)) {
	n := len(el)
	if n == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	// Chunk size rounds up so the final chunk absorbs the remainder.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(part EdgeList) {
			defer wg.Done()
			for _, e := range part {
				fn(e.Source, e.Target)
			}
		}(el[start:end])
	}
	wg.Wait()
}
