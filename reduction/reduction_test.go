package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/reduction"
)

func TestApplyForcesSelfLoopVertex(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 0)
	g.AddArc(0, 1)

	result := reduction.HeuristicReduce(g)
	assert.Equal(t, []int{0}, result.Forced)
	assert.True(t, g.IsDeleted(0))
}

func TestApplyCollapsesSimpleCycleToOneForcedVertex(t *testing.T) {
	g := graphstore.NewGraph(5)
	for i := 0; i < 5; i++ {
		g.AddArc(i, (i+1)%5)
	}

	result := reduction.HeuristicReduce(g)
	require.Len(t, result.Forced, 1)
	assert.True(t, g.IsEmpty())
}

func TestApplyRemovesAcyclicChainEntirely(t *testing.T) {
	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)

	result := reduction.HeuristicReduce(g)
	assert.Empty(t, result.Forced)
	assert.True(t, g.IsEmpty())
}

func TestApplyPreservesForbiddenVertex(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.MarkForbidden([]int{0})

	reduction.HeuristicReduce(g)
	// 1 has a single out-neighbor, so it is bypassed: 0 gains the arc
	// 0->0 and 1 is deleted. 0 is forbidden, so despite that self-loop it
	// is neither forced nor short-circuited, and it survives reduction.
	assert.False(t, g.IsDeleted(0))
}

func TestReduceFailsWhenForcedExceedsBudget(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 0)
	g.AddArc(1, 1)

	_, ok := reduction.Reduce(g, 1)
	assert.False(t, ok)
}

func TestReduceSucceedsWithinBudget(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 0)

	result, ok := reduction.Reduce(g, 1)
	require.True(t, ok)
	assert.Equal(t, []int{0}, result.Forced)
}
