// Package edgelist provides the in-memory edge collection that feeds the
// csr construction pipeline.
//
// An EdgeList is an unordered slice of (Source, Target) pairs of uint32
// node ids. It knows three things the pipeline needs:
//
//   - MaxNodeID / NodeCount — the id space the edges span
//   - Degrees — how many edge endpoints each node anchors under a given
//     Direction, counted by concurrent workers with atomic adds
//   - ForEachParallel — work-partitioned, read-only traversal of the pairs
//
// Direction selects which endpoint(s) of an edge an operation treats as
// primary: Outgoing counts/places source-anchored endpoints, Incoming
// target-anchored ones, and Undirected both.
//
// Self-loops and parallel edges are ordinary edges throughout: they are
// counted and placed like any other pair, never deduplicated.
//
// The package has no failure modes. Node ids are not validated; callers
// that hand Degrees a nodeCount smaller than MaxNodeID()+1 violate the
// contract and will panic on the out-of-range index.
package edgelist
