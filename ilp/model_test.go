package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/ilp"
)

func TestSolveMinimumVertexCoverOfTriangle(t *testing.T) {
	m := ilp.NewModel()
	v0 := m.AddVariable(true)
	v1 := m.AddVariable(true)
	v2 := m.AddVariable(true)

	m.AddRow([]int{v0, v1}, []float64{1, 1}, ilp.GreaterEqual, 1)
	m.AddRow([]int{v1, v2}, []float64{1, 1}, ilp.GreaterEqual, 1)
	m.AddRow([]int{v0, v2}, []float64{1, 1}, ilp.GreaterEqual, 1)

	objective, values, err := m.Solve(false, 1e-7)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, objective, 1e-6)
	assert.Len(t, values, 3)
}

func TestSolveRelaxedGivesFractionalLowerBound(t *testing.T) {
	m := ilp.NewModel()
	v0 := m.AddVariable(true)
	v1 := m.AddVariable(true)
	v2 := m.AddVariable(true)

	m.AddRow([]int{v0, v1}, []float64{1, 1}, ilp.GreaterEqual, 1)
	m.AddRow([]int{v1, v2}, []float64{1, 1}, ilp.GreaterEqual, 1)
	m.AddRow([]int{v0, v2}, []float64{1, 1}, ilp.GreaterEqual, 1)

	objective, _, err := m.Solve(true, 1e-7)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, objective, 1e-6)
}

func TestSolveWithNoVariablesErrors(t *testing.T) {
	m := ilp.NewModel()
	_, _, err := m.Solve(false, 1e-7)
	assert.ErrorIs(t, err, ilp.ErrNoVariables)
}
