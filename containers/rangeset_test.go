package containers_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/containers"
)

func TestRangeSetBasic(t *testing.T) {
	rs := containers.NewRangeSet(10)
	assert.Equal(t, 0, rs.Len())

	require.True(t, rs.Insert(3))
	require.True(t, rs.Insert(7))
	require.False(t, rs.Insert(3)) // already present

	assert.Equal(t, 2, rs.Len())
	assert.True(t, rs.Contains(3))
	assert.True(t, rs.Contains(7))
	assert.False(t, rs.Contains(4))

	require.True(t, rs.Remove(3))
	assert.False(t, rs.Contains(3))
	assert.Equal(t, 1, rs.Len())
	require.False(t, rs.Remove(3))
}

func TestRangeSetSwapRemovePreservesMembership(t *testing.T) {
	rs := containers.NewRangeSetFrom(20, []int{1, 2, 3, 4, 5})
	rs.Remove(2)

	got := rs.Slice()
	sort.Ints(got)
	assert.Equal(t, []int{1, 3, 4, 5}, got)

	for i := 0; i < rs.Len(); i++ {
		assert.True(t, rs.Contains(rs.At(i)))
	}
}
