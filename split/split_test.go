package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/split"
)

func TestDecomposeExtractsUndirectedTriangleAsConstraints(t *testing.T) {
	// An undirected triangle has no remove_unique-eligible variable (every
	// vertex sits in exactly two of the three pair constraints), so it
	// survives ReduceHittingSet intact as three genuine constraints.
	g := graphstore.NewGraph(3)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(1, 2)
	g.AddArc(2, 1)
	g.AddArc(0, 2)
	g.AddArc(2, 0)

	result, ok := split.Decompose(g, split.NoBudget, true)
	require.True(t, ok)
	assert.Empty(t, result.Forced)
	assert.Len(t, result.Constraints, 3)
	assert.True(t, result.Directed.IsEmpty())
	assert.ElementsMatch(t, []int{1, 2}, result.Undirected.UndirectedNeighbors(0))
	assert.NotEmpty(t, result.UpperBound)
}

func TestDecomposeLeavesDirectedResidueIntact(t *testing.T) {
	g := graphstore.NewGraph(3)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 0)

	result, ok := split.Decompose(g, split.NoBudget, true)
	require.True(t, ok)
	assert.Empty(t, result.Constraints)
	assert.True(t, result.Directed.IsCyclic())
	assert.NotEmpty(t, result.UpperBound)
	assert.True(t, result.Directed.IsAcyclicWithFVS(result.UpperBound))
}

func TestDecomposeDoesNotMutateInput(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 1)
	g.AddArc(1, 0)

	split.Decompose(g, split.NoBudget, true)
	assert.True(t, g.IsCyclic())
}

func TestDecomposeForcesLoneUndirectedPairIntoSolution(t *testing.T) {
	// A single undirected pair becomes the one constraint {0,1}. Neither
	// variable occurs anywhere else, so ReduceHittingSet's remove_unique
	// rule empties that set and forces one of its members: the whole
	// instance collapses to one forced vertex.
	g := graphstore.NewGraph(2)
	g.AddArc(0, 1)
	g.AddArc(1, 0)

	result, ok := split.Decompose(g, split.NoBudget, true)
	require.True(t, ok)
	assert.True(t, result.Directed.IsEmpty())
	assert.Len(t, result.Forced, 1)
}

func TestDecomposeWithoutReduceLeavesForcedEmpty(t *testing.T) {
	g := graphstore.NewGraph(3)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(1, 2)
	g.AddArc(2, 1)

	result, ok := split.Decompose(g, split.NoBudget, false)
	require.True(t, ok)
	assert.Empty(t, result.Forced)
	assert.Empty(t, result.UpperBound)
	assert.Len(t, result.Constraints, 2)
}

func TestDecomposeFailsWhenForcedExceedsBudget(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 1)
	g.AddArc(1, 0)

	_, ok := split.Decompose(g, 0, true)
	assert.False(t, ok)
}
