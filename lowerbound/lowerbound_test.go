package lowerbound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/lowerbound"
)

func TestComputeOnUndirectedTriangleIsAtLeastTwo(t *testing.T) {
	g := graphstore.NewGraph(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				g.AddArc(i, j)
			}
		}
	}

	bound, err := lowerbound.Compute(g, 1e-7)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bound, 2)
}

func TestComputeOnEmptyGraphIsZero(t *testing.T) {
	g := graphstore.NewGraph(3)
	bound, err := lowerbound.Compute(g, 1e-7)
	require.NoError(t, err)
	assert.Equal(t, 0, bound)
}

func TestComputeOnSingleDirectedEdgeIsZero(t *testing.T) {
	g := graphstore.NewGraph(2)
	g.AddArc(0, 1)
	bound, err := lowerbound.Compute(g, 1e-7)
	require.NoError(t, err)
	assert.Equal(t, 0, bound)
}
