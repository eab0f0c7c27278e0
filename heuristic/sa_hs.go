package heuristic

import (
	"math"
	"sort"

	"github.com/katalvlaran/dfvs/constraint"
)

// hsParams mirrors the original SA-HS schedule: a high starting
// temperature (flips are cheap early on) cooling geometrically down to a
// temperature low enough that exp(-1/Tend) ~= 1e-9, i.e. an uphill move
// worth one extra chosen variable is effectively never accepted once the
// schedule bottoms out.
var (
	hsT0    = 5.0
	hsTend  = -1.0 / math.Log(1e-9)
	hsAlpha = 0.995
)

// SAHSSolve anneals a hitting-set assignment over universe [0,universe)
// for the given constraints (each requiring at least LowerBound of its
// Variables to be chosen), starting from a greedy initial solution and
// applying randomized flip-and-repair moves under a Metropolis
// acceptance rule. Returns a valid hitting set, not necessarily minimum.
func SAHSSolve(constraints []constraint.Constraint, universe int, seed int64) []int {
	if len(constraints) == 0 {
		return nil
	}

	rng := rngFromSeed(seed)
	chosen := make([]bool, universe)
	count := make([]int, len(constraints)) // number of chosen vars per constraint

	greedyInitialSolution(constraints, chosen, count)

	// membership[v] = indices of constraints v participates in, used to
	// update `count` in O(degree) per flip instead of rescanning.
	membership := make([][]int, universe)
	for ci, c := range constraints {
		for _, v := range c.Variables {
			membership[v] = append(membership[v], ci)
		}
	}

	temperature := hsT0
	for temperature > hsTend {
		v := rng.Intn(universe)
		if len(membership[v]) == 0 {
			temperature *= hsAlpha
			continue
		}

		if chosen[v] {
			delta := tryRemove(constraints, chosen, count, membership, v)
			accept := delta <= 0
			if !accept {
				accept = rng.Float64() < math.Exp(-float64(delta)/temperature)
			}
			if !accept {
				// undo: removal happened inside tryRemove speculatively
				addVar(chosen, count, membership, v)
			}
		} else {
			addVar(chosen, count, membership, v)
		}

		temperature *= hsAlpha
	}

	repairInfeasible(constraints, chosen, count)

	var result []int
	for v, c := range chosen {
		if c {
			result = append(result, v)
		}
	}
	return result
}

// greedyInitialSolution repeatedly adds the variable covering the most
// currently-unsatisfied constraint deficit, until every constraint meets
// its LowerBound.
func greedyInitialSolution(constraints []constraint.Constraint, chosen []bool, count []int) {
	for {
		deficit := false
		gain := make(map[int]int)
		for ci, c := range constraints {
			if count[ci] >= c.LowerBound {
				continue
			}
			deficit = true
			for _, v := range c.Variables {
				if !chosen[v] {
					gain[v]++
				}
			}
		}
		if !deficit {
			return
		}

		// Iterate candidate variables by ascending id, not map range, so
		// ties break the same way on every run.
		vars := make([]int, 0, len(gain))
		for v := range gain {
			vars = append(vars, v)
		}
		sort.Ints(vars)

		bestV, bestGain := -1, -1
		for _, v := range vars {
			if g := gain[v]; g > bestGain {
				bestV, bestGain = v, g
			}
		}
		if bestV == -1 {
			return // no variable can help; leave remaining constraints unresolved
		}

		chosen[bestV] = true
		for ci, c := range constraints {
			for _, v := range c.Variables {
				if v == bestV {
					count[ci]++
				}
			}
		}
	}
}

// addVar marks v chosen and bumps every constraint it participates in.
func addVar(chosen []bool, count []int, membership [][]int, v int) {
	chosen[v] = true
	for _, ci := range membership[v] {
		count[ci]++
	}
}

// tryRemove speculatively unmarks v and returns the size delta (-1) if
// every constraint v participated in stays satisfied; otherwise it
// immediately repairs by re-adding the cheapest variable that restores
// feasibility for each broken constraint, and returns the net size delta.
func tryRemove(constraints []constraint.Constraint, chosen []bool, count []int, membership [][]int, v int) int {
	chosen[v] = false
	for _, ci := range membership[v] {
		count[ci]--
	}
	delta := -1

	for _, ci := range membership[v] {
		c := constraints[ci]
		if count[ci] >= c.LowerBound {
			continue
		}
		// repair: pick any unchosen variable from this constraint
		for _, w := range c.Variables {
			if !chosen[w] {
				addVar(chosen, count, membership, w)
				delta++
				break
			}
		}
	}

	return delta
}

// repairInfeasible does a final deterministic sweep adding variables
// until every constraint is satisfied, a safety net against the
// randomized schedule ending mid-repair.
func repairInfeasible(constraints []constraint.Constraint, chosen []bool, count []int) {
	greedyInitialSolution(constraints, chosen, count)
}
