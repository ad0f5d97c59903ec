// Package graph builds immutable, cache-friendly compressed-sparse-row
// (CSR) adjacency structures from unordered edge collections, using every
// available CPU core and no per-edge locking.
//
// 🚀 What is graph?
//
//	A small, parallel graph-construction library that brings together:
//		• edgelist/ — in-memory edge collections with direction-aware,
//		  work-partitioned degree counting and parallel iteration
//		• csr/      — the lock-free construction pipeline (degree counting,
//		  prefix sums, atomic slot claiming, per-node canonicalization) and
//		  the DirectedGraph / UndirectedGraph types built on top of it
//		• bfs/      — breadth-first traversal over the finished graphs,
//		  reading neighbor lists as zero-copy views
//
// ✨ Why choose graph?
//
//   - Deterministic output — the same edges yield byte-identical arrays
//     no matter how many workers ran or in which order edges arrived
//   - Zero-copy reads — Neighbors returns a view into the target array,
//     never a copy
//   - Pure Go — no cgo, a single tiny dependency surface
//
// Quick ASCII example:
//
//	    0───1
//	     ╲  │
//	      ╲ │
//	        2
//
//	three undirected edges become offsets [0 2 4 6] and
//	targets [1 2 | 0 2 | 0 1].
//
// Dive into the csr package docs for the pipeline internals.
//
//	go get github.com/dengelt/graph
package graph
