package exact

import (
	"sort"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/heuristic"
	"github.com/katalvlaran/dfvs/lowerbound"
	"github.com/katalvlaran/dfvs/split"
)

// LPTolerance is the feasibility tolerance passed to every LP relaxation
// solved during search.
const LPTolerance = 1e-7

// BranchAndReduce returns a minimum feedback vertex set for the strongly
// connected graph g via split-and-reduce branch-and-bound search (spec
// 4.6.1): it seeds the search with a SA-Ordering heuristic upper bound
// and re-runs full split-reduce every `frequency` recursion levels
// (frequency<=0 means every level); in between, a branch only re-splits
// without reducing.
func BranchAndReduce(g *graphstore.Graph, frequency int, seed int64) []int {
	upper := heuristic.SAOrderingSolve(g, seed)
	budget := len(upper) + 1 // branchAndReduce only keeps strictly smaller solutions

	if sol, ok := branchAndReduce(g.Clone(), budget, 0, frequency); ok {
		return sol
	}
	return upper
}

// branchAndReduce searches for a feedback vertex set of g strictly
// smaller than budget. depth counts recursion levels from the top-level
// call and decides, together with frequency, whether this call performs
// a full split-reduce or just a split. It returns (solution, true) if a
// solution smaller than budget exists, or (nil, false) otherwise.
func branchAndReduce(g *graphstore.Graph, budget, depth, frequency int) ([]int, bool) {
	if !g.IsCyclic() {
		return nil, true
	}
	if budget <= 0 {
		return nil, false
	}

	reduce := frequency <= 0 || depth%frequency == 0
	result, ok := split.Decompose(g, budget, reduce)
	if !ok {
		return nil, false
	}

	forced := result.Forced
	remaining := budget - len(forced)
	if remaining <= 0 {
		return nil, false
	}

	// Rebuilding the working graph for a branch uses G_d + G_u: the
	// additive overlay restores the symmetry the split pulled apart.
	gd, gu := result.Directed, result.Undirected
	combined := gd.Add(gu)

	if !combined.IsCyclic() {
		return forced, true
	}

	lb, err := lowerbound.Compute(combined, LPTolerance)
	if err == nil && lb >= remaining {
		return nil, false
	}

	bestBudget := remaining
	var best []int
	haveBest := false

	if star, found := gu.MaxDegreeStar(); found {
		// Branch A: delete the star's center.
		branchA := combined.Clone()
		branchA.RemoveVertex(star.Center)
		if sol, ok := branchAndReduce(branchA, bestBudget-1, depth+1, frequency); ok {
			if merged := combine([]int{star.Center}, sol); len(merged) < bestBudget {
				bestBudget, best, haveBest = len(merged), merged, true
			}
		}

		// Branch B: delete every neighbor of the star instead, only
		// viable if the budget can afford all of them.
		if len(star.Neighbors) <= bestBudget {
			branchB := combined.Clone()
			branchB.RemoveVertices(star.Neighbors)
			if sol, ok := branchAndReduce(branchB, bestBudget-len(star.Neighbors), depth+1, frequency); ok {
				if merged := combine(star.Neighbors, sol); len(merged) < bestBudget {
					bestBudget, best, haveBest = len(merged), merged, true
				}
			}
		}
	} else {
		cycle := smallestCycle(gd.DisjointEdgeCycleCover(nil))
		if cycle == nil {
			// combined.IsCyclic() is true but neither G_u has a star nor
			// G_d alone has a disjoint cycle: the cycle must cross both,
			// so fall back to a direct search over the rejoined graph.
			cycle, _ = combined.FindCycleWithFVS(nil)
		}
		sortByDegreeProduct(gd, cycle)

		for _, v := range cycle {
			if bestBudget <= lb {
				break
			}
			branch := combined.Clone()
			branch.RemoveVertex(v)
			if sol, ok := branchAndReduce(branch, bestBudget-1, depth+1, frequency); ok {
				if merged := combine([]int{v}, sol); len(merged) < bestBudget {
					bestBudget, best, haveBest = len(merged), merged, true
				}
			}
		}
	}

	if haveBest {
		return combine(forced, best), true
	}
	return nil, false
}

// smallestCycle returns the shortest cycle in cycles, or nil if cycles is
// empty.
func smallestCycle(cycles [][]int) []int {
	var best []int
	for _, c := range cycles {
		if best == nil || len(c) < len(best) {
			best = c
		}
	}
	return best
}

// sortByDegreeProduct orders cycle ascending by g's in-degree times
// out-degree, the tie-break the exact search uses to pick the most
// promising branch vertex first.
func sortByDegreeProduct(g *graphstore.Graph, cycle []int) {
	sort.Slice(cycle, func(i, j int) bool {
		pi := len(g.InNeighbors(cycle[i])) * len(g.OutNeighbors(cycle[i]))
		pj := len(g.InNeighbors(cycle[j])) * len(g.OutNeighbors(cycle[j]))
		return pi < pj
	})
}

// combine concatenates every group into a single fresh slice.
func combine(groups ...[]int) []int {
	n := 0
	for _, grp := range groups {
		n += len(grp)
	}
	out := make([]int, 0, n)
	for _, grp := range groups {
		out = append(out, grp...)
	}
	return out
}
