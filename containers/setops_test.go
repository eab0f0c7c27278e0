package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dfvs/containers"
)

func TestDifference(t *testing.T) {
	cases := []struct {
		name     string
		lhs, rhs []int
		want     []int
	}{
		{"empty both", nil, nil, []int{}},
		{"rhs empty", []int{1, 2, 3}, nil, []int{1, 2, 3}},
		{"lhs empty", nil, []int{1, 2}, []int{}},
		{"disjoint", []int{1, 3, 5}, []int{2, 4}, []int{1, 3, 5}},
		{"overlap", []int{1, 2, 3, 4}, []int{2, 4}, []int{1, 3}},
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, []int{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := containers.Difference(c.lhs, c.rhs)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestIntersection(t *testing.T) {
	cases := []struct {
		name     string
		lhs, rhs []int
		want     []int
	}{
		{"empty both", nil, nil, []int{}},
		{"disjoint", []int{1, 3, 5}, []int{2, 4}, []int{}},
		{"overlap", []int{1, 2, 3, 4}, []int{2, 4, 6}, []int{2, 4}},
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := containers.Intersection(c.lhs, c.rhs)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestInsertRemoveContainsSorted(t *testing.T) {
	var s []int
	s = containers.InsertSorted(s, 5)
	s = containers.InsertSorted(s, 1)
	s = containers.InsertSorted(s, 3)
	s = containers.InsertSorted(s, 3) // idempotent
	assert.Equal(t, []int{1, 3, 5}, s)

	assert.True(t, containers.ContainsSorted(s, 3))
	assert.False(t, containers.ContainsSorted(s, 4))

	s = containers.RemoveSorted(s, 3)
	assert.Equal(t, []int{1, 5}, s)
	s = containers.RemoveSorted(s, 99) // no-op
	assert.Equal(t, []int{1, 5}, s)
}
