package csr

import (
	"sort"
)

// DegreeOrdered returns a new UndirectedGraph with node ids reassigned in
// descending degree order: the highest-degree node becomes id 0, the
// lowest-degree node id n-1. Ties break by ascending old id, so the
// result is deterministic.
//
// The receiver is left untouched — relabeling builds a fresh pair of
// arrays with the same memory footprint instead of rewriting the shared
// ones in place, so outstanding Neighbors views of the old graph stay
// valid.
// Complexity: O(V log V + E log d)
func (g *UndirectedGraph) DegreeOrdered() *UndirectedGraph {
	nodeCount := g.nodeCount

	// order[newID] = oldID, sorted by degree descending, old id ascending.
	order := make([]uint32, nodeCount)
	for i := range order {
		order[i] = uint32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := g.Degree(order[i]), g.Degree(order[j])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})

	// perm[oldID] = newID, the inverse permutation.
	perm := make([]uint32, nodeCount)
	for newID, oldID := range order {
		perm[oldID] = uint32(newID)
	}

	// New offsets: the degree sequence under the new labeling.
	degrees := make([]uint32, nodeCount)
	for newID, oldID := range order {
		degrees[newID] = uint32(g.Degree(oldID))
	}
	offsets := prefixSum(degrees)

	// New targets: copy each node's neighbors through the permutation,
	// then canonicalize since the mapping does not preserve order.
	targets := make([]uint32, g.edges.EdgeCount())
	for newID, oldID := range order {
		i := offsets[newID]
		for _, old := range g.edges.Neighbors(oldID) {
			targets[i] = perm[old]
			i++
		}
	}
	sortTargets(offsets, targets, 0)

	return newUndirected(&CSR{offsets: offsets, targets: targets})
}
