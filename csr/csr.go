package csr

// CSR is an immutable compressed-sparse-row adjacency structure: an offset
// table of length NodeCount()+1 and a flat target array. Once built it is
// never mutated, so all methods are safe for unbounded concurrent reads.
type CSR struct {
	offsets []uint32 // exclusive prefix sums; offsets[0]=0, offsets[n]=len(targets)
	targets []uint32 // neighbor ids, sorted ascending within each node's range
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (c *CSR) NodeCount() int {
	return len(c.offsets) - 1
}

// EdgeCount returns the number of placed edge endpoints, i.e. the length
// of the target array.
// Complexity: O(1)
func (c *CSR) EdgeCount() int {
	return len(c.targets)
}

// Degree returns the number of neighbors of node.
// Complexity: O(1)
func (c *CSR) Degree(node uint32) int {
	return int(c.offsets[node+1] - c.offsets[node])
}

// Neighbors returns node's neighbor ids in ascending order, duplicates
// included. The returned slice is a zero-copy view into the target array;
// callers must not modify it.
// Complexity: O(1)
func (c *CSR) Neighbors(node uint32) []uint32 {
	return c.targets[c.offsets[node]:c.offsets[node+1]]
}
