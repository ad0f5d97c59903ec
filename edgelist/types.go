// Package edgelist defines the Direction enum, the Edge pair type,
// and the EdgeList collection consumed by the csr pipeline.
package edgelist

// Direction selects which endpoint(s) of an edge contribute to degree
// counting and edge placement.
type Direction int

const (
	// Outgoing counts and places only source-anchored endpoints.
	Outgoing Direction = iota
	// Incoming counts and places only target-anchored endpoints.
	Incoming
	// Undirected counts and places both endpoints of every edge.
	Undirected
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// Edge is a single (Source, Target) pair of unsigned node ids.
type Edge struct {
	// Source is the id of the edge's source node.
	Source uint32
	// Target is the id of the edge's target node.
	Target uint32
}

// EdgeList is an unordered, read-only collection of edges.
//
// All methods are safe for concurrent use as long as the underlying slice
// is not mutated, which is the caller's obligation for the lifetime of any
// build consuming it.
type EdgeList []Edge
