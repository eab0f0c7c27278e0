package heuristic

import (
	"math"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/reduction"
)

// orderingParams mirrors the original SA-Ordering schedule: a moderate
// starting temperature, slow geometric cooling, a move budget
// proportional to instance size, and an early-stop patience so a run that
// has clearly converged doesn't burn through its whole move budget.
const (
	orderingT0          = 0.6
	orderingAlpha       = 0.99
	orderingMovesPerN   = 5
	orderingMaxFailures = 50
)

// SAOrderingSolve anneals a topological ordering of g's active vertices
// to minimize the number of backward arcs, then reads a feedback vertex
// set off the converged order. Before annealing, g is heuristically
// reduced and compressed to a dense working copy; the candidate read off
// the annealed order is remapped back to g's original ids and unioned
// with the reduction's forced vertices. The result is a valid (if not
// necessarily minimum) feedback vertex set, suitable as an upper bound
// for the exact core.
func SAOrderingSolve(g *graphstore.Graph, seed int64) []int {
	work := g.Clone()
	red := reduction.HeuristicReduce(work)
	compressed, newToOld := work.Compress()

	n := compressed.TotalVertices()
	if n == 0 {
		return red.Forced
	}

	rng := rngFromSeed(seed)
	order := permRange(n, rng)

	pos := make(map[int]int, n)
	for i, v := range order {
		pos[v] = i
	}

	cost := backwardArcCount(compressed, pos)
	best := append([]int(nil), order...)
	bestCost := cost

	temperature := orderingT0
	maxMoves := orderingMovesPerN * n
	failures := 0

	for move := 0; move < maxMoves && failures < orderingMaxFailures; move++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}

		vi, vj := order[i], order[j]
		delta := swapDelta(compressed, order, pos, i, j)

		accept := delta <= 0
		if !accept && temperature > 0 {
			accept = rng.Float64() < math.Exp(-float64(delta)/temperature)
		}

		if accept {
			order[i], order[j] = order[j], order[i]
			pos[vi], pos[vj] = j, i
			cost += delta
			if cost < bestCost {
				bestCost = cost
				best = append(best[:0], order...)
				failures = 0
			} else {
				failures++
			}
		} else {
			failures++
		}

		temperature *= orderingAlpha
	}

	bestPos := make(map[int]int, n)
	for i, v := range best {
		bestPos[v] = i
	}

	local := feedbackSetFromOrder(compressed, best, bestPos)
	remapped := make([]int, len(local))
	for i, v := range local {
		remapped[i] = newToOld[v]
	}

	return append(append([]int(nil), red.Forced...), remapped...)
}

// backwardArcCount counts arcs u->v with pos[u] > pos[v], the quantity
// SA-Ordering tries to drive to zero.
func backwardArcCount(g *graphstore.Graph, pos map[int]int) int {
	count := 0
	for u, pu := range pos {
		for _, v := range g.OutNeighbors(u) {
			if pv, ok := pos[v]; ok && pu > pv {
				count++
			}
		}
	}
	return count
}

// swapDelta computes the change in backward-arc count that swapping the
// vertices at positions i and j would cause, without mutating order.
func swapDelta(g *graphstore.Graph, order []int, pos map[int]int, i, j int) int {
	vi, vj := order[i], order[j]

	before := arcBackwardness(g, vi, pos) + arcBackwardness(g, vj, pos)

	pos[vi], pos[vj] = j, i
	after := arcBackwardness(g, vi, pos) + arcBackwardness(g, vj, pos)
	pos[vi], pos[vj] = i, j // restore, caller commits only on accept

	return after - before
}

// arcBackwardness counts, for every arc touching v (either direction),
// whether it is currently a backward arc under pos.
func arcBackwardness(g *graphstore.Graph, v int, pos map[int]int) int {
	count := 0
	pv := pos[v]
	for _, w := range g.OutNeighbors(v) {
		if pw, ok := pos[w]; ok && pv > pw {
			count++
		}
	}
	for _, u := range g.InNeighbors(v) {
		if pu, ok := pos[u]; ok && pu > pv {
			count++
		}
	}
	return count
}

// feedbackSetFromOrder greedily picks, among the endpoints of remaining
// backward arcs under order, the vertex touching the most of them, adds
// it to the feedback set, and repeats until no backward arc remains.
func feedbackSetFromOrder(g *graphstore.Graph, order []int, pos map[int]int) []int {
	type arc struct{ u, v int }

	var backward []arc
	for _, u := range order {
		for _, v := range g.OutNeighbors(u) {
			if pu, pv := pos[u], pos[v]; pu > pv {
				backward = append(backward, arc{u, v})
			}
		}
	}

	var fvs []int
	for len(backward) > 0 {
		touch := make(map[int]int)
		for _, a := range backward {
			touch[a.u]++
			touch[a.v]++
		}

		// Iterate in order-position order (not map range) so ties break
		// the same way on every run, independent of Go's randomized map
		// iteration.
		bestV, bestCount := -1, -1
		for _, v := range order {
			if c, ok := touch[v]; ok && c > bestCount {
				bestV, bestCount = v, c
			}
		}
		fvs = append(fvs, bestV)

		var remaining []arc
		for _, a := range backward {
			if a.u != bestV && a.v != bestV {
				remaining = append(remaining, a)
			}
		}
		backward = remaining
	}

	return fvs
}
