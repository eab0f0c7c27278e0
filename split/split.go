package split

import (
	"sort"

	"github.com/katalvlaran/dfvs/constraint"
	"github.com/katalvlaran/dfvs/containers"
	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/heuristic"
	"github.com/katalvlaran/dfvs/reduction"
)

// NoBudget tells Decompose to run its reduction rounds without a hard cap
// on forced vertices — the ILP cutting-plane driver's use, since it
// decomposes once up front rather than while branching under a budget.
const NoBudget = -1

// Result is the outcome of Decompose: Directed (G_d) is the remaining
// directed residue with every undirected edge pulled out, Undirected
// (G_u) is the accumulated undirected companion those edges were folded
// into, Forced is every vertex reduction proved belongs to any minimum
// feedback vertex set, Constraints is one lower-bound-1 constraint per
// surviving undirected edge, and UpperBound is a heuristic hitting-set
// solution extended (with extra disjoint cycles, if necessary) until it
// is a valid feedback vertex set of Directed. Forced and UpperBound are
// both expressed in g's original vertex ids.
type Result struct {
	Directed    *graphstore.Graph
	Undirected  *graphstore.Graph
	Forced      []int
	Constraints []constraint.Constraint
	UpperBound  []int
}

// Decompose repeatedly extracts stars from g into the undirected
// companion and reduces the directed residue, until no star remains or a
// reduction round forces nothing new. budget bounds the total number of
// forced vertices Decompose may accept before reporting ok=false; pass
// NoBudget to never give up on that account. If reduce is false,
// Decompose performs a single star-extraction pass and returns
// immediately with Forced always empty — the "just split, don't reduce"
// path a branch-and-reduce search takes between its periodic full
// reduction rounds. g is never mutated.
func Decompose(g *graphstore.Graph, budget int, reduce bool) (Result, bool) {
	directed := g.Clone()
	undirected := graphstore.NewGraph(g.TotalVertices())
	seen := make(map[[2]int]bool)
	var constraints []constraint.Constraint

	extractStars := func() bool {
		stars := directed.Stars()
		if len(stars) == 0 {
			return false
		}

		centers := make([]int, len(stars))
		for i, s := range stars {
			centers[i] = s.Center
			for _, nb := range s.Neighbors {
				key := orderedPair(s.Center, nb)
				if !seen[key] {
					seen[key] = true
					constraints = append(constraints, constraint.NewHittingSetConstraint([]int{key[0], key[1]}))
				}
				undirected.AddArc(s.Center, nb)
				undirected.AddArc(nb, s.Center)
			}
		}
		directed.MarkForbidden(centers)
		directed.RemoveUndirectedEdges(stars)
		return true
	}

	if !reduce {
		extractStars()
		return Result{Directed: directed, Undirected: undirected, Constraints: constraints}, true
	}

	var forced []int
	for extractStars() {
		hs := constraint.ReduceHittingSet(variablesOf(constraints), directed.TotalVertices())
		if len(hs.Forced) > 0 {
			forced = append(forced, hs.Forced...)
			undirected.RemoveVertices(hs.Forced)
			directed.RemoveVertices(hs.Forced)
		}
		constraints = fromSets(hs.Reduced)

		var round reduction.Result
		if budget == NoBudget {
			round = reduction.HeuristicReduce(directed)
		} else {
			ok := false
			round, ok = reduction.Reduce(directed, budget-len(forced))
			if !ok {
				return Result{}, false
			}
		}

		if len(round.Forced) == 0 {
			break
		}
		forced = append(forced, round.Forced...)
		undirected.RemoveVertices(round.Forced)
		constraints = dropSatisfied(constraints, round.Forced)
	}

	if budget != NoBudget && len(forced) > budget {
		return Result{}, false
	}

	return Result{
		Directed:    directed,
		Undirected:  undirected,
		Forced:      forced,
		Constraints: constraints,
		UpperBound:  heuristicUpperBound(directed, constraints),
	}, true
}

// orderedPair returns {a,b} with the smaller value first, a stable key
// for deduplicating undirected edges regardless of discovery order.
func orderedPair(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}

func variablesOf(constraints []constraint.Constraint) [][]int {
	out := make([][]int, len(constraints))
	for i, c := range constraints {
		out[i] = c.Variables
	}
	return out
}

func fromSets(sets [][]int) []constraint.Constraint {
	out := make([]constraint.Constraint, len(sets))
	for i, s := range sets {
		out[i] = constraint.NewHittingSetConstraint(s)
	}
	return out
}

// dropSatisfied removes every constraint already hit by a forced
// variable.
func dropSatisfied(constraints []constraint.Constraint, forced []int) []constraint.Constraint {
	forcedSet := make(map[int]bool, len(forced))
	for _, v := range forced {
		forcedSet[v] = true
	}

	var out []constraint.Constraint
	for _, c := range constraints {
		satisfied := false
		for _, v := range c.Variables {
			if forcedSet[v] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			out = append(out, c)
		}
	}
	return out
}

// heuristicUpperBound runs SA-HS over constraints for an initial hitting
// set, then extends it with one vertex from each remaining disjoint
// cycle of directed until the result is a valid feedback vertex set.
func heuristicUpperBound(directed *graphstore.Graph, constraints []constraint.Constraint) []int {
	solution := append([]int(nil), heuristic.SAHSSolve(constraints, directed.TotalVertices(), 0)...)
	sort.Ints(solution)

	for !directed.IsAcyclicWithFVS(solution) {
		cycles := directed.DisjointEdgeCycleCover(solution)
		if len(cycles) == 0 {
			cycle, found := directed.FindCycleWithFVS(solution)
			if !found {
				break
			}
			cycles = [][]int{cycle}
		}
		for _, c := range cycles {
			solution = containers.InsertSorted(solution, c[0])
		}
	}

	return solution
}
