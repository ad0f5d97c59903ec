package csr

import (
	"golang.org/x/sync/errgroup"

	"github.com/dengelt/graph/edgelist"
)

// DirectedGraph composes two CSRs over the same node space: one holding
// each node's outgoing neighbors, one its incoming neighbors. It is
// immutable after construction.
type DirectedGraph struct {
	nodeCount int
	edgeCount int
	out       *CSR
	in        *CSR
}

// BuildDirected constructs a DirectedGraph from src. The Outgoing and
// Incoming pipelines are independent, so they run concurrently; each one
// still honors the Workers cap individually.
func BuildDirected(src EdgeSource, opts ...Option) (*DirectedGraph, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	nodeCount := src.NodeCount()

	var out, in *CSR
	var eg errgroup.Group
	eg.Go(func() (err error) {
		out, err = New(src, nodeCount, edgelist.Outgoing, opts...)
		return err
	})
	eg.Go(func() (err error) {
		in, err = New(src, nodeCount, edgelist.Incoming, opts...)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &DirectedGraph{
		nodeCount: out.NodeCount(),
		edgeCount: out.EdgeCount(),
		out:       out,
		in:        in,
	}, nil
}

// NodeCount returns the number of nodes.
func (g *DirectedGraph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of directed edges.
func (g *DirectedGraph) EdgeCount() int { return g.edgeCount }

// OutDegree returns the number of edges leaving node.
func (g *DirectedGraph) OutDegree(node uint32) int { return g.out.Degree(node) }

// OutNeighbors returns the targets of node's outgoing edges in ascending
// order, as a zero-copy view; callers must not modify it.
func (g *DirectedGraph) OutNeighbors(node uint32) []uint32 { return g.out.Neighbors(node) }

// InDegree returns the number of edges entering node.
func (g *DirectedGraph) InDegree(node uint32) int { return g.in.Degree(node) }

// InNeighbors returns the sources of node's incoming edges in ascending
// order, as a zero-copy view; callers must not modify it.
func (g *DirectedGraph) InNeighbors(node uint32) []uint32 { return g.in.Neighbors(node) }

// Out returns the outgoing-adjacency CSR, e.g. for traversals that only
// follow edge direction.
func (g *DirectedGraph) Out() *CSR { return g.out }

// In returns the incoming-adjacency CSR.
func (g *DirectedGraph) In() *CSR { return g.in }
