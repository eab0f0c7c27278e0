package dfvsio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/dfvsio"
)

func TestReadParsesHeaderAndAdjacency(t *testing.T) {
	input := "% comment\n3 2\n2\n3\n\n"
	g, err := dfvsio.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.TotalVertices())
	assert.Equal(t, []int{1}, g.OutNeighbors(0))
	assert.Equal(t, []int{2}, g.OutNeighbors(1))
	assert.Empty(t, g.OutNeighbors(2))
}

func TestReadRejectsEmptyInput(t *testing.T) {
	_, err := dfvsio.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, dfvsio.ErrEmptyInput)
}

func TestWriteEmitsOneIndexedIds(t *testing.T) {
	var buf bytes.Buffer
	err := dfvsio.Write(&buf, []int{0, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n5\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	input := "4 3\n2\n3\n4\n\n"
	g, err := dfvsio.Read(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dfvsio.Write(&buf, []int{0}))
	assert.Equal(t, "1\n", buf.String())
	assert.True(t, g.IsAcyclicWithFVS([]int{0, 1, 2, 3}))
}
