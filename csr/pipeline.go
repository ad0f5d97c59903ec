package csr

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dengelt/graph/edgelist"
)

// New builds a CSR from src for the given direction, spanning nodeCount
// dense node ids. All ids referenced by src must be < nodeCount; this is a
// precondition, not a checked error. Returns ErrNilSource for a nil source
// or ErrOptionViolation for an invalid option.
func New(src EdgeSource, nodeCount int, dir edgelist.Direction, opts ...Option) (*CSR, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return build(src, nodeCount, dir, &o), nil
}

// build runs the five pipeline phases. Each phase is a synchronization
// barrier: no phase reads a buffer before every worker of the previous
// phase has finished writing it.
func build(src EdgeSource, nodeCount int, dir edgelist.Direction, o *BuildOptions) *CSR {
	start := time.Now()
	degrees := src.Degrees(nodeCount, dir)
	o.observe(PhaseDegrees, start)

	start = time.Now()
	offsets := prefixSum(degrees)
	o.observe(PhasePrefixSum, start)

	// The target buffer has exactly offsets[nodeCount] slots; placement
	// fills every one of them.
	targets := make([]uint32, offsets[nodeCount])

	start = time.Now()
	place(src, offsets, targets, dir, o.Workers)
	repairOffsets(offsets)
	o.observe(PhasePlacement, start)

	start = time.Now()
	sortTargets(offsets, targets, o.Workers)
	o.observe(PhaseSort, start)

	return &CSR{offsets: offsets, targets: targets}
}

// prefixSum computes the exclusive scan of degrees:
// sums[0] = 0, sums[i+1] = sums[i] + degrees[i].
// Complexity: O(V)
func prefixSum(degrees []uint32) []uint32 {
	sums := make([]uint32, len(degrees)+1)
	var total uint32

	for i, degree := range degrees {
		sums[i] = total
		total += degree
	}
	sums[len(degrees)] = total

	return sums
}

// place scatters every edge endpoint into its final slot in targets.
//
// The offsets slice itself serves as the live per-node write cursors: a
// worker claims a slot with atomic.AddUint32(&offsets[node], 1)-1, the
// fetch-and-increment guaranteeing that two workers racing on the same
// node never receive the same index. The claimed target slot is then
// written by exactly one goroutine, and the join inside ForEachParallel
// publishes all writes before the next phase reads the buffers as plain
// memory.
func place(src EdgeSource, offsets, targets []uint32, dir edgelist.Direction, workers int) {
	switch dir {
	case edgelist.Outgoing:
		src.ForEachParallel(workers, func(s, t uint32) {
			targets[atomic.AddUint32(&offsets[s], 1)-1] = t
		})
	case edgelist.Incoming:
		src.ForEachParallel(workers, func(s, t uint32) {
			targets[atomic.AddUint32(&offsets[t], 1)-1] = s
		})
	case edgelist.Undirected:
		src.ForEachParallel(workers, func(s, t uint32) {
			targets[atomic.AddUint32(&offsets[s], 1)-1] = t
			targets[atomic.AddUint32(&offsets[t], 1)-1] = s
		})
	}
}

// repairOffsets restores the exclusive-offset form after placement.
//
// Placement advances every cursor to the exclusive end of its node's
// range, so offsets[i] now holds what offsets[i+1] held before the phase.
// Shifting the array right one cell and restoring the leading zero
// recovers the original table. Must run before any range lookup.
// Complexity: O(V)
func repairOffsets(offsets []uint32) {
	copy(offsets[1:], offsets[:len(offsets)-1])
	offsets[0] = 0
}

// sortTargets canonicalizes the layout: each node's sub-range of targets
// is sorted ascending, independently and in parallel. Ranges are disjoint
// by construction, so workers never overlap. Sorting is unstable;
// duplicate neighbor ids are interchangeable.
// Complexity: O(E log d) total across workers
func sortTargets(offsets, targets []uint32, workers int) {
	nodeCount := len(offsets) - 1
	if nodeCount == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > nodeCount {
		workers = nodeCount
	}
	chunk := (nodeCount + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < nodeCount; lo += chunk {
		hi := lo + chunk
		if hi > nodeCount {
			hi = nodeCount
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for node := lo; node < hi; node++ {
				slices.Sort(targets[offsets[node]:offsets[node+1]])
			}
		}(lo, hi)
	}
	wg.Wait()
}
