package constraint

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/dfvs/containers"
)

// HSReductionResult is the outcome of ReduceHittingSet: every variable
// that reduction proved must belong to any hitting set, plus the
// remaining (possibly empty) instance after those variables and the sets
// they satisfy are removed.
type HSReductionResult struct {
	Forced  []int
	Reduced [][]int
}

// ReduceHittingSet repeatedly applies four preprocessing rules to a
// hitting-set instance (a collection of sets over the universe
// [0,maxValue), each requiring at least one chosen element) until no rule
// fires, then additionally folds in the superset rule once no cheaper
// rule applies. The original slices are not mutated; copies are sorted
// and reduced internally.
//
//   - remove_equal: duplicate sets are redundant, keep one copy.
//   - remove_unique: a variable appearing in only one set can be dropped
//     from every set it's NOT forced by; a set left with no other option
//     forces one of its original members.
//   - include_forced: any singleton set forces its sole member; every
//     other set satisfied by a forced variable is removed outright.
//   - remove_supersets: a set that is a superset of another set in the
//     instance is redundant (only applied once some set has >2
//     variables, since it is not needed — and not cheap — for instances
//     made purely of pairs).
func ReduceHittingSet(original [][]int, maxValue int) HSReductionResult {
	instance := make([][]int, len(original))
	applySupersets := false
	for i, s := range original {
		c := append([]int(nil), s...)
		sort.Ints(c)
		instance[i] = c
		if len(c) > 2 {
			applySupersets = true
		}
	}

	var totalForced []int

	for {
		reduced := false

		reduced = removeEqual(&instance) || reduced

		changed, forced := removeUnique(&instance, maxValue)
		reduced = changed || reduced
		totalForced = append(totalForced, forced...)

		if forced := includeForced(&instance); forced != nil {
			reduced = true
			totalForced = append(totalForced, forced...)
		}

		if reduced {
			continue
		}

		if applySupersets {
			reduced = removeSupersets(&instance, maxValue) || reduced
		}

		if !reduced {
			break
		}
	}

	return HSReductionResult{Forced: totalForced, Reduced: instance}
}

// setKey renders a sorted set as a stable map key.
func setKey(s []int) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// removeEqual drops every set that duplicates an earlier one.
func removeEqual(instance *[][]int) bool {
	seen := make(map[string]bool, len(*instance))
	var out [][]int
	changed := false
	for _, s := range *instance {
		k := setKey(s)
		if seen[k] {
			changed = true
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	if changed {
		*instance = out
	}
	return changed
}

// removeSupersets drops every set that strictly contains another set
// still present in the instance.
func removeSupersets(instance *[][]int, maxValue int) bool {
	hasLargeSet := false
	for _, s := range *instance {
		if len(s) > 2 {
			hasLargeSet = true
			break
		}
	}
	if !hasLargeSet {
		return false
	}

	table := make([][]int, maxValue)
	for i, s := range *instance {
		for _, elem := range s {
			table[elem] = append(table[elem], i)
		}
	}

	toRemove := make(map[int]bool)
	for i, s := range *instance {
		supersets := append([]int(nil), table[s[0]]...)
		for j := 1; j < len(s); j++ {
			supersets = containers.Intersection(supersets, table[s[j]])
		}
		if len(supersets) > 1 {
			for _, idx := range supersets {
				if idx != i {
					toRemove[idx] = true
				}
			}
		}
	}

	if len(toRemove) == 0 {
		return false
	}

	var out [][]int
	for i, s := range *instance {
		if toRemove[i] {
			continue
		}
		out = append(out, s)
	}
	*instance = out
	return true
}

// removeUnique finds every variable occurring in exactly one set (a
// singleton set counts its variable twice, so it is never mistaken for a
// unique variable that can simply be dropped) and removes it from the
// sets it appears in; a set left empty by this forces one of its
// original members since it had no other way to be hit.
func removeUnique(instance *[][]int, maxValue int) (bool, []int) {
	count := make([]int, maxValue)
	for _, s := range *instance {
		for _, elem := range s {
			if len(s) == 1 {
				count[elem] += 2
			} else {
				count[elem]++
			}
		}
	}

	var toRemove []int
	for v, c := range count {
		if c == 1 {
			toRemove = append(toRemove, v)
		}
	}
	if len(toRemove) == 0 {
		return false, nil
	}

	var newInstance [][]int
	var forced []int
	for _, s := range *instance {
		newSet := containers.Difference(s, toRemove)
		if len(newSet) == 0 {
			forced = append(forced, s[0])
		} else {
			newInstance = append(newInstance, newSet)
		}
	}
	*instance = newInstance
	return true, forced
}

// includeForced forces every variable appearing alone in some set and
// drops every other set already satisfied by one of those variables.
func includeForced(instance *[][]int) []int {
	forcedSet := make(map[int]bool)
	changed := false
	for _, s := range *instance {
		if len(s) == 1 {
			forcedSet[s[0]] = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	var toRemove []int
	for v := range forcedSet {
		toRemove = append(toRemove, v)
	}
	sort.Ints(toRemove)

	var newInstance [][]int
	for _, s := range *instance {
		if len(*instance) == 1 {
			continue
		}
		newSet := containers.Difference(s, toRemove)
		if len(newSet) == len(s) {
			newInstance = append(newInstance, newSet)
		}
	}
	*instance = newInstance
	return toRemove
}
