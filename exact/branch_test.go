package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dfvs/exact"
	"github.com/katalvlaran/dfvs/graphstore"
)

func TestSolveOnAcyclicGraphReturnsEmpty(t *testing.T) {
	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)

	sol := exact.Solve(g)
	assert.Empty(t, sol)
}

func TestSolveOnFiveCycleReturnsSingleVertex(t *testing.T) {
	g := graphstore.NewGraph(5)
	for i := 0; i < 5; i++ {
		g.AddArc(i, (i+1)%5)
	}

	sol := exact.Solve(g)
	assert.Len(t, sol, 1)
	assert.True(t, g.IsAcyclicWithFVS(sol))
}

func TestSolveOnCliqueNeedsAllButOneVertex(t *testing.T) {
	n := 4
	g := graphstore.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.AddArc(i, j)
			}
		}
	}

	sol := exact.Solve(g)
	assert.Len(t, sol, n-1)
	assert.True(t, g.IsAcyclicWithFVS(sol))
}

func TestSolveOnPACEFourVertexExample(t *testing.T) {
	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 0)
	g.AddArc(3, 0)

	sol := exact.Solve(g)
	assert.Len(t, sol, 1)
	assert.True(t, g.IsAcyclicWithFVS(sol))
}

func TestSolveOnSelfLoopReturnsThatVertex(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 0)
	g.AddArc(0, 1)

	sol := exact.Solve(g)
	assert.Equal(t, []int{0}, sol)
}
