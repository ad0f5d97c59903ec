// Package bfs provides breadth-first search over the immutable CSR
// graphs, returning unweighted shortest-path distances, parent links, and
// visit order.
//
// BFS consumes any type exposing the id-indexed capability surface of a
// built graph — NodeCount plus zero-copy Neighbors — so it runs unchanged
// over a csr.UndirectedGraph, a single csr.CSR, or the out- or in-side of
// a csr.DirectedGraph (via Out()/In()).
//
// Because node ids are dense integers, results are flat slices rather
// than maps: Depth[v] is v's distance from the start (-1 if unreached)
// and Parent[v] its predecessor in the BFS tree (None for the root and
// for unreached nodes).
//
// Traversal order is deterministic: neighbor lists are canonically sorted
// at construction time, so BFS visits each frontier in ascending id order
// of discovery.
package bfs
