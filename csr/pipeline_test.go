package csr_test

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dengelt/graph/csr"
	"github.com/dengelt/graph/edgelist"
)

// randomEdges produces a reproducible pseudo-random edge list over
// nodeCount dense ids, including occasional self-loops and duplicates.
func randomEdges(seed int64, nodeCount, edgeCount int) edgelist.EdgeList {
	rng := rand.New(rand.NewSource(seed))
	el := make(edgelist.EdgeList, 0, edgeCount+2)
	for i := 0; i < edgeCount; i++ {
		el = append(el, edgelist.Edge{
			Source: uint32(rng.Intn(nodeCount)),
			Target: uint32(rng.Intn(nodeCount)),
		})
	}
	// Pin the extremes so the id space is exactly [0, nodeCount).
	el = append(el,
		edgelist.Edge{Source: 0, Target: uint32(nodeCount - 1)},
		edgelist.Edge{Source: uint32(nodeCount - 1), Target: 0},
	)

	return el
}

func TestNeighborRangesSortedAscending(t *testing.T) {
	require := require.New(t)
	el := randomEdges(1, 200, 3000)

	g, err := csr.BuildUndirected(el)
	require.NoError(err)
	for node := uint32(0); int(node) < g.NodeCount(); node++ {
		nbrs := g.Neighbors(node)
		require.True(sort.SliceIsSorted(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] }),
			"neighbors of %d must be sorted ascending", node)
	}
}

func TestDegreeSumsMatchPlacedEndpoints(t *testing.T) {
	require := require.New(t)
	el := randomEdges(2, 100, 1500)

	// Direction-restricted builds place one endpoint per edge.
	dg, err := csr.BuildDirected(el)
	require.NoError(err)
	var outSum, inSum int
	for node := uint32(0); int(node) < dg.NodeCount(); node++ {
		outSum += dg.OutDegree(node)
		inSum += dg.InDegree(node)
	}
	require.Equal(len(el), outSum)
	require.Equal(len(el), inSum)

	// The undirected build places both endpoints.
	ug, err := csr.BuildUndirected(el)
	require.NoError(err)
	var sum int
	for node := uint32(0); int(node) < ug.NodeCount(); node++ {
		sum += ug.Degree(node)
	}
	require.Equal(2*len(el), sum)
	require.Equal(len(el), ug.EdgeCount())
}

func TestDegreesMatchBruteForce(t *testing.T) {
	require := require.New(t)
	el := randomEdges(3, 50, 800)
	nodeCount := el.NodeCount()

	// Count endpoints the slow, obvious way.
	wantOut := make([]int, nodeCount)
	wantIn := make([]int, nodeCount)
	for _, e := range el {
		wantOut[e.Source]++
		wantIn[e.Target]++
	}

	g, err := csr.BuildDirected(el)
	require.NoError(err)
	for node := uint32(0); int(node) < nodeCount; node++ {
		require.Equal(wantOut[node], g.OutDegree(node), "out-degree of %d", node)
		require.Equal(wantIn[node], g.InDegree(node), "in-degree of %d", node)
		require.Len(g.OutNeighbors(node), wantOut[node])
		require.Len(g.InNeighbors(node), wantIn[node])
	}
}

func TestCanonicalOutputIndependentOfWorkerCount(t *testing.T) {
	require := require.New(t)
	el := randomEdges(4, 300, 5000)

	// One worker is fully sequential placement; many workers race on the
	// per-node cursors. Canonicalization must erase the difference.
	sequential, err := csr.BuildUndirected(el, csr.WithWorkers(1))
	require.NoError(err)
	parallel, err := csr.BuildUndirected(el, csr.WithWorkers(16))
	require.NoError(err)

	require.Equal(sequential.NodeCount(), parallel.NodeCount())
	require.Equal(sequential.EdgeCount(), parallel.EdgeCount())
	for node := uint32(0); int(node) < sequential.NodeCount(); node++ {
		require.Equal(sequential.Neighbors(node), parallel.Neighbors(node),
			"neighbor range of %d must be identical across worker counts", node)
	}

	// Same check on the directed build, both adjacency sides.
	seqD, err := csr.BuildDirected(el, csr.WithWorkers(1))
	require.NoError(err)
	parD, err := csr.BuildDirected(el, csr.WithWorkers(16))
	require.NoError(err)
	for node := uint32(0); int(node) < seqD.NodeCount(); node++ {
		require.Equal(seqD.OutNeighbors(node), parD.OutNeighbors(node))
		require.Equal(seqD.InNeighbors(node), parD.InNeighbors(node))
	}
}

func TestUndirectedMirrorsEveryEdge(t *testing.T) {
	require := require.New(t)
	el := randomEdges(5, 80, 1200)

	g, err := csr.BuildUndirected(el)
	require.NoError(err)

	// Each neighbor entry u in v's list must be matched by v in u's list,
	// with multiplicity.
	count := func(nbrs []uint32, id uint32) (c int) {
		for _, n := range nbrs {
			if n == id {
				c++
			}
		}
		return c
	}
	for v := uint32(0); int(v) < g.NodeCount(); v++ {
		for _, u := range g.Neighbors(v) {
			if u == v {
				continue // a self-loop mirrors itself
			}
			require.Equal(count(g.Neighbors(v), u), count(g.Neighbors(u), v),
				"edge multiplicity between %d and %d must match on both sides", v, u)
		}
	}
}

func TestPhaseHookObservesEveryPhase(t *testing.T) {
	require := require.New(t)

	var mu sync.Mutex
	seen := make(map[csr.Phase]int)
	hook := func(p csr.Phase, _ time.Duration) {
		mu.Lock()
		seen[p]++
		mu.Unlock()
	}

	_, err := csr.BuildUndirected(randomEdges(6, 40, 400), csr.WithPhaseHook(hook))
	require.NoError(err)

	// One pipeline run reports each phase exactly once.
	for _, p := range []csr.Phase{csr.PhaseDegrees, csr.PhasePrefixSum, csr.PhasePlacement, csr.PhaseSort} {
		require.Equal(1, seen[p], "phase %q", p)
	}

	// The directed build runs two pipelines, so each phase fires twice.
	seen = make(map[csr.Phase]int)
	_, err = csr.BuildDirected(randomEdges(6, 40, 400), csr.WithPhaseHook(hook))
	require.NoError(err)
	for _, p := range []csr.Phase{csr.PhaseDegrees, csr.PhasePrefixSum, csr.PhasePlacement, csr.PhaseSort} {
		require.Equal(2, seen[p], "phase %q", p)
	}
}

func TestNewRespectsExplicitNodeCount(t *testing.T) {
	require := require.New(t)

	// A caller may span a larger dense id space than the edges reference.
	c, err := csr.New(edgelist.EdgeList{{Source: 0, Target: 1}}, 5, edgelist.Outgoing)
	require.NoError(err)
	require.Equal(5, c.NodeCount())
	require.Equal(1, c.EdgeCount())
	require.Equal([]uint32{1}, c.Neighbors(0))
	require.Empty(c.Neighbors(4))
}
