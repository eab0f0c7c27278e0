package reduction

import "github.com/katalvlaran/dfvs/graphstore"

// Result records what a reduction pass discovered: Forced vertices must
// be in every minimum feedback vertex set (currently only self-loop
// vertices produce this), while the rest of the rules simply delete
// vertices the search will never need to consider, without forcing them.
type Result struct {
	Forced []int
}

// HeuristicReduce runs every kernelization rule to a fixpoint, mutating g
// in place, and returns the vertices forced into the solution along the
// way. It never fails: callers that don't track a search budget (the
// heuristics, and the split decomposer's "just split" passes) use this
// variant.
func HeuristicReduce(g *graphstore.Graph) Result {
	return reduceToFixpoint(g)
}

// Reduce is HeuristicReduce's exact-search counterpart: it additionally
// takes an upper bound k and, once the rules reach their fixpoint,
// reports ok=false if the forced vertices alone exceed k, since no feedback vertex set smaller than the
// caller's budget can then exist and the branch should be pruned.
func Reduce(g *graphstore.Graph, k int) (Result, bool) {
	result := reduceToFixpoint(g)
	if len(result.Forced) > k {
		return Result{}, false
	}
	return result, true
}

// reduceToFixpoint is the rule set both Reduce and HeuristicReduce share.
// Order matches the Rust reference: self-loops first (since they are the
// cheapest and most common), then SCC pruning, then the two degree-1
// short-circuit rules, repeating until no rule changes anything.
func reduceToFixpoint(g *graphstore.Graph) Result {
	var forced []int

	for {
		changed := false

		if f := removeSelfLoops(g); len(f) > 0 {
			forced = append(forced, f...)
			changed = true
		}

		if pruneNonCyclic(g) {
			changed = true
		}

		if shortCircuitSingleOutgoing(g) {
			changed = true
		}

		if shortCircuitSingleIncoming(g) {
			changed = true
		}

		if !changed {
			break
		}
	}

	return Result{Forced: forced}
}

// removeSelfLoops forces every non-forbidden, non-deleted vertex with an
// arc to itself: a self-loop is a cycle of length one, so the vertex must
// be in every feedback vertex set.
func removeSelfLoops(g *graphstore.Graph) []int {
	var forced []int
	for v := 0; v < g.TotalVertices(); v++ {
		if g.IsDeleted(v) || g.IsForbidden(v) {
			continue
		}
		if g.HasSelfLoop(v) {
			forced = append(forced, v)
			g.RemoveVertex(v)
		}
	}
	return forced
}

// pruneNonCyclic removes every active vertex that provably cannot belong
// to any directed cycle: one with no incoming arcs, no outgoing arcs, or
// one that sits outside every nontrivial strongly connected component.
// None of these vertices can ever need to be in a feedback vertex set,
// and removing them cannot destroy a cycle another vertex depends on.
func pruneNonCyclic(g *graphstore.Graph) bool {
	changed := false

	for v := 0; v < g.TotalVertices(); v++ {
		if g.IsDeleted(v) {
			continue
		}
		if len(g.OutNeighbors(v)) == 0 || len(g.InNeighbors(v)) == 0 {
			g.RemoveVertex(v)
			changed = true
		}
	}

	sccs := g.Tarjan(false)
	inCycle := make([]bool, g.TotalVertices())
	for _, scc := range sccs {
		for _, v := range scc {
			inCycle[v] = true
		}
	}
	for v := 0; v < g.TotalVertices(); v++ {
		if g.IsDeleted(v) || inCycle[v] {
			continue
		}
		g.RemoveVertex(v)
		changed = true
	}

	return changed
}

// shortCircuitSingleOutgoing removes every non-forbidden vertex v with
// exactly one active out-neighbor w, rewiring every in-neighbor of v
// directly to w: any cycle that used to pass through v now closes the
// same way through the direct arc, so v never needs to be in the
// solution.
func shortCircuitSingleOutgoing(g *graphstore.Graph) bool {
	changed := false
	for v := 0; v < g.TotalVertices(); v++ {
		if g.IsDeleted(v) || g.IsForbidden(v) {
			continue
		}
		out := g.OutNeighbors(v)
		if len(out) != 1 {
			continue
		}
		w := out[0]
		if w == v {
			continue // a self-loop is handled by removeSelfLoops
		}
		for _, u := range append([]int(nil), g.InNeighbors(v)...) {
			if u != v {
				g.AddArc(u, w)
			}
		}
		g.RemoveVertex(v)
		changed = true
	}
	return changed
}

// shortCircuitSingleIncoming is the mirror of shortCircuitSingleOutgoing:
// a vertex v with exactly one active in-neighbor u is bypassed by wiring
// u directly to every out-neighbor of v.
func shortCircuitSingleIncoming(g *graphstore.Graph) bool {
	changed := false
	for v := 0; v < g.TotalVertices(); v++ {
		if g.IsDeleted(v) || g.IsForbidden(v) {
			continue
		}
		in := g.InNeighbors(v)
		if len(in) != 1 {
			continue
		}
		u := in[0]
		if u == v {
			continue
		}
		for _, w := range append([]int(nil), g.OutNeighbors(v)...) {
			if w != v {
				g.AddArc(u, w)
			}
		}
		g.RemoveVertex(v)
		changed = true
	}
	return changed
}
