package csr

import (
	"github.com/dengelt/graph/edgelist"
)

// UndirectedGraph composes a single CSR in which every logical edge
// contributes an entry at both endpoints. It is immutable after
// construction.
type UndirectedGraph struct {
	nodeCount int
	edgeCount int
	edges     *CSR
}

// BuildUndirected constructs an UndirectedGraph from src by running the
// pipeline once with edgelist.Undirected. Each logical edge occupies two
// slots of the target array, so EdgeCount reports half the physical
// length. A self-loop also occupies two slots and therefore appears twice
// in its node's neighbor list.
func BuildUndirected(src EdgeSource, opts ...Option) (*UndirectedGraph, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	edges, err := New(src, src.NodeCount(), edgelist.Undirected, opts...)
	if err != nil {
		return nil, err
	}

	return newUndirected(edges), nil
}

// newUndirected wraps a both-endpoint CSR in the UndirectedGraph contract.
func newUndirected(edges *CSR) *UndirectedGraph {
	return &UndirectedGraph{
		nodeCount: edges.NodeCount(),
		edgeCount: edges.EdgeCount() / 2,
		edges:     edges,
	}
}

// NodeCount returns the number of nodes.
func (g *UndirectedGraph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of logical (undirected) edges.
func (g *UndirectedGraph) EdgeCount() int { return g.edgeCount }

// Degree returns the number of edge endpoints anchored at node; a
// self-loop counts twice.
func (g *UndirectedGraph) Degree(node uint32) int { return g.edges.Degree(node) }

// Neighbors returns node's neighbors in ascending order, duplicates
// included, as a zero-copy view; callers must not modify it.
func (g *UndirectedGraph) Neighbors(node uint32) []uint32 { return g.edges.Neighbors(node) }

// View returns the underlying CSR.
func (g *UndirectedGraph) View() *CSR { return g.edges }
