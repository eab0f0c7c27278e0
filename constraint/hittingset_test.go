package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dfvs/constraint"
)

func TestReduceHittingSetForcesSingletons(t *testing.T) {
	instance := [][]int{{0}, {0, 1}, {1, 2}}
	result := constraint.ReduceHittingSet(instance, 3)
	assert.Contains(t, result.Forced, 0)
}

func TestReduceHittingSetDropsDuplicates(t *testing.T) {
	instance := [][]int{{1, 2}, {1, 2}, {3, 4}}
	result := constraint.ReduceHittingSet(instance, 5)
	assert.LessOrEqual(t, len(result.Reduced), 2)
}

func TestReduceHittingSetRemovesSupersets(t *testing.T) {
	instance := [][]int{{0, 1}, {0, 1, 2}}
	result := constraint.ReduceHittingSet(instance, 3)
	for _, s := range result.Reduced {
		assert.NotEqual(t, []int{0, 1, 2}, s)
	}
}

func TestReduceHittingSetUniqueVariableForcesRemainder(t *testing.T) {
	// variable 2 appears only in the second set; removing it from that
	// set (its sole occurrence) leaves {1}, forcing 1.
	instance := [][]int{{0, 1}, {1, 2}}
	result := constraint.ReduceHittingSet(instance, 3)
	assert.NotEmpty(t, result.Forced)
}
