// Package csr builds immutable compressed-sparse-row adjacency structures
// from unordered edge collections and exposes the DirectedGraph and
// UndirectedGraph types on top of them.
//
// A CSR is two flat arrays: an offset table of length nodeCount+1 and a
// target array holding every neighbor id. Node i's neighbors occupy the
// contiguous sub-range targets[offsets[i]:offsets[i+1]], sorted ascending,
// with duplicates (parallel edges, self-loops) preserved. Degree lookups
// are constant time and neighbor scans are cache-local.
//
// Construction pipeline
//
// Building a CSR from an EdgeSource runs five phases, each a full
// synchronization barrier before the next begins:
//
//  1. Degree counting — one counter per node, per the requested Direction.
//  2. Prefix sum — exclusive scan turning degrees into offsets.
//  3. Parallel placement — the lock-free core. The offset array doubles as
//     the live per-node write cursors: a worker placing endpoint (s, t)
//     claims its slot with a single atomic add on offsets[s] and writes t
//     there. Two workers racing on the same node can never receive the
//     same slot, and that atomic add is the only synchronization primitive
//     in the phase — no locks, no retries.
//  4. Offset repair — placement consumes the offsets as cursors, leaving
//     each cell at the exclusive end of its node's range; the repair shifts
//     the array right one cell and restores the leading zero.
//  5. Canonicalization — every node's sub-range is sorted independently
//     across workers, making the final layout byte-identical regardless of
//     worker count or edge order.
//
// The result is read-only for its remaining lifetime. There is no
// incremental mutation; DegreeOrdered produces a new graph rather than
// editing one in place.
//
// Node ids are never validated: an EdgeSource referencing ids at or above
// its reported NodeCount violates the construction precondition and the
// build will panic on the out-of-range index.
package csr
