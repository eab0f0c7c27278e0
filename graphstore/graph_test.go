package graphstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/graphstore"
)

// buildClique returns a directed graph on n vertices with both arcs
// between every pair, i.e. a complete undirected clique.
func buildClique(n int) *graphstore.Graph {
	g := graphstore.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.AddArc(i, j)
			}
		}
	}
	return g
}

func TestCliqueIsCyclicAndNeedsFVS(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		g := buildClique(n)
		assert.True(t, g.IsCyclic(), "K_%d must be cyclic", n)
		// Removing all but one vertex leaves it acyclic; removing n-2
		// vertices still leaves a 2-cycle between the remaining pair.
		remaining := make([]int, 0, n-1)
		for i := 1; i < n; i++ {
			remaining = append(remaining, i)
		}
		assert.True(t, g.IsAcyclicWithFVS(remaining), "K_%d minus all but one vertex must be acyclic", n)
	}
}

func TestSimpleFiveCycle(t *testing.T) {
	g := graphstore.NewGraph(5)
	for i := 0; i < 5; i++ {
		g.AddArc(i, (i+1)%5)
	}
	assert.True(t, g.IsCyclic())
	cycle, found := g.FindCycleWithFVS(nil)
	require.True(t, found)
	assert.Len(t, cycle, 5)

	assert.True(t, g.IsAcyclicWithFVS([]int{0}))
}

func TestTwoDisjointTwoCyclesPlusPendant(t *testing.T) {
	// 0<->1, 2<->3, plus a pendant arc 1->4 (no cycle through 4).
	g := graphstore.NewGraph(5)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(2, 3)
	g.AddArc(3, 2)
	g.AddArc(1, 4)

	assert.True(t, g.IsCyclic())
	assert.True(t, g.IsAcyclicWithFVS([]int{0, 2}))
	assert.False(t, g.IsAcyclicWithFVS([]int{0}))

	stars := g.Stars()
	centers := map[int][]int{}
	for _, s := range stars {
		centers[s.Center] = s.Neighbors
	}
	assert.ElementsMatch(t, []int{0}, centers[1])
	assert.ElementsMatch(t, []int{1}, centers[0])
}

func TestPACEFourVertexExample(t *testing.T) {
	// 0->1->2->0 (3-cycle) plus 3->0, no way back from 0 to 3: vertex 3
	// cannot be part of any cycle and the minimum FVS has size 1.
	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 0)
	g.AddArc(3, 0)

	assert.True(t, g.IsCyclic())
	for _, v := range []int{0, 1, 2} {
		assert.True(t, g.IsAcyclicWithFVS([]int{v}), "removing %d should break the only cycle", v)
	}
	assert.False(t, g.IsAcyclicWithFVS([]int{3}))
}

func TestDisjointChainsAreAcyclic(t *testing.T) {
	g := graphstore.NewGraph(6)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(3, 4)
	g.AddArc(4, 5)

	assert.False(t, g.IsCyclic())
	_, found := g.FindCycleWithFVS(nil)
	assert.False(t, found)
}

func TestSelfLoopIsItsOwnCycle(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 0)
	g.AddArc(0, 1)

	assert.True(t, g.IsCyclic())
	assert.True(t, g.HasSelfLoop(0))
	assert.False(t, g.HasSelfLoop(1))
	assert.True(t, g.IsAcyclicWithFVS([]int{0}))
}

func TestTarjanIterativeFindsCliqueAsOneSCC(t *testing.T) {
	g := buildClique(4)
	sccs := g.Tarjan(false)
	require.Len(t, sccs, 1)
	assert.Len(t, sccs[0], 4)
}

func TestTarjanOnAcyclicGraphReportsNoNontrivialSCC(t *testing.T) {
	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	sccs := g.Tarjan(false)
	assert.Len(t, sccs, 0)
}

func TestRemoveVertexUpdatesBothAdjacencies(t *testing.T) {
	g := graphstore.NewGraph(3)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.RemoveVertex(1)

	assert.True(t, g.IsDeleted(1))
	assert.Empty(t, g.OutNeighbors(0))
	assert.Empty(t, g.InNeighbors(2))
	assert.Equal(t, 2, g.Vertices())
	assert.Equal(t, 3, g.TotalVertices())
}

func TestCompressDropsDeletedAndEmptyVertices(t *testing.T) {
	g := graphstore.NewGraph(5)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	// vertex 3 is untouched (empty adjacency), vertex 4 gets deleted.
	g.AddArc(4, 0)
	g.RemoveVertex(4)

	compressed, newToOld := g.Compress()
	assert.Equal(t, 3, compressed.TotalVertices())
	assert.ElementsMatch(t, []int{0, 1, 2}, newToOld)
}

func TestInducedSubgraphKeepsOnlyRequestedVertices(t *testing.T) {
	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)

	sub := g.InducedSubgraph([]int{0, 1, 2})
	assert.True(t, sub.IsDeleted(3))
	assert.ElementsMatch(t, []int{1}, sub.OutNeighbors(0))
	assert.Empty(t, sub.OutNeighbors(2))
}

func TestUndirectedThreeCliqueDetection(t *testing.T) {
	g := buildClique(3)
	triples := g.UndirectedThreeCliques()
	require.Len(t, triples, 1)
	assert.Equal(t, [3]int{0, 1, 2}, triples[0])
}

func TestFourCliqueDetection(t *testing.T) {
	g := buildClique(4)
	quads := g.FourCliques()
	require.Len(t, quads, 1)
	assert.Equal(t, [4]int{0, 1, 2, 3}, quads[0])
}

func TestTwinCliquesDetectsIdenticalAdjacency(t *testing.T) {
	g := graphstore.NewGraph(4)
	// 0 and 1 both point to and are pointed at by 2 and 3, identically.
	for _, v := range []int{2, 3} {
		g.AddArc(0, v)
		g.AddArc(v, 0)
		g.AddArc(1, v)
		g.AddArc(v, 1)
	}
	// 0/1 are twins (identical neighborhoods {2,3}), and so are 2/3
	// (identical neighborhoods {0,1}) by the same symmetric construction.
	twins := g.TwinCliques()
	require.Len(t, twins, 2)
	assert.Contains(t, twins, graphstore.TwinPair{A: 0, B: 1})
	assert.Contains(t, twins, graphstore.TwinPair{A: 2, B: 3})
}

func TestEdgeCycleCoverCoversSimpleCycle(t *testing.T) {
	g := graphstore.NewGraph(3)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 0)

	cycles := g.EdgeCycleCover()
	assert.NotEmpty(t, cycles)
	for _, c := range cycles {
		assert.Len(t, c, 3)
	}
}

func TestDisjointEdgeCycleCoverRespectsExclusions(t *testing.T) {
	g := graphstore.NewGraph(6)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(2, 3)
	g.AddArc(3, 2)

	cycles := g.DisjointEdgeCycleCover([]int{4, 5})
	assert.Len(t, cycles, 2)
}

func TestCloneIsIndependent(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 1)
	clone := g.Clone()
	clone.AddArc(1, 0)

	assert.False(t, g.IsCyclic())
	assert.True(t, clone.IsCyclic())
}
