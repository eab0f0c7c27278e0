package graphstore

import "github.com/katalvlaran/dfvs/containers"

// Star describes a center vertex together with every neighbor it shares an
// undirected edge with (i.e. u->v and v->u both hold). Split decomposition
// extracts stars one at a time, folding each into the undirected companion
// graph.
type Star struct {
	Center    int
	Neighbors []int
}

// UndirectedNeighbors returns the sorted list of vertices w for which both
// v->w and w->v are arcs of g.
func (g *Graph) UndirectedNeighbors(v int) []int {
	return containers.Intersection(g.out[v], g.in[v])
}

// IsUndirected reports whether every arc of g is reciprocated, i.e. g is
// equivalent to a plain undirected graph. The cutting-plane driver uses
// this to skip split decomposition entirely and hand a purely undirected
// instance straight to the external vertex cover solver.
func (g *Graph) IsUndirected() bool {
	for v := 0; v < g.n; v++ {
		if g.deleted[v] {
			continue
		}
		for _, w := range g.out[v] {
			if !containers.ContainsSorted(g.in[v], w) {
				return false
			}
		}
	}
	return true
}

// Stars returns, for every non-deleted, non-forbidden vertex with at least
// one undirected neighbor, a Star centered on it.
func (g *Graph) Stars() []Star {
	var stars []Star
	for v := 0; v < g.n; v++ {
		if g.deleted[v] || g.forbidden[v] {
			continue
		}
		nb := g.UndirectedNeighbors(v)
		if len(nb) > 0 {
			stars = append(stars, Star{Center: v, Neighbors: nb})
		}
	}
	return stars
}

// MaxDegreeStar returns the star centered on the non-forbidden vertex with
// the most undirected neighbors, used by the branch-and-reduce search
// (package exact) to pick the star it branches on. ok is false if no
// vertex has any undirected neighbor.
func (g *Graph) MaxDegreeStar() (Star, bool) {
	best := Star{}
	found := false
	for v := 0; v < g.n; v++ {
		if g.deleted[v] || g.forbidden[v] {
			continue
		}
		nb := g.UndirectedNeighbors(v)
		if len(nb) > 0 && (!found || len(nb) > len(best.Neighbors)) {
			best = Star{Center: v, Neighbors: nb}
			found = true
		}
	}
	return best, found
}

// UndirectedThreeCliques returns every triple {u,v,w} of distinct vertices
// that are pairwise connected by undirected edges.
func (g *Graph) UndirectedThreeCliques() [][3]int {
	var out [][3]int
	for u := 0; u < g.n; u++ {
		if g.deleted[u] {
			continue
		}
		und := g.UndirectedNeighbors(u)
		for i := 0; i < len(und); i++ {
			v := und[i]
			if v <= u {
				continue
			}
			common := containers.Intersection(und, g.UndirectedNeighbors(v))
			for _, w := range common {
				if w > v {
					out = append(out, [3]int{u, v, w})
				}
			}
		}
	}
	return out
}

// ThreeCliques returns every triple of distinct vertices mutually
// connected by a directed 2-cycle on each pair, i.e. the same structural
// notion as UndirectedThreeCliques expressed over the raw directed arcs.
// The LP lower bound (package lowerbound) calls this entry point.
func (g *Graph) ThreeCliques() [][3]int {
	return g.UndirectedThreeCliques()
}

// FourCliques returns every quadruple of distinct vertices pairwise
// connected by undirected edges. Used by the LP lower bound's clique
// inequalities (a 4-clique's cycle cover number is at least 3).
func (g *Graph) FourCliques() [][4]int {
	var out [][4]int
	triples := g.UndirectedThreeCliques()
	for _, t := range triples {
		u, v, w := t[0], t[1], t[2]
		common := containers.Intersection(g.UndirectedNeighbors(u), g.UndirectedNeighbors(v))
		common = containers.Intersection(common, g.UndirectedNeighbors(w))
		for _, x := range common {
			if x > w {
				out = append(out, [4]int{u, v, w, x})
			}
		}
	}
	return out
}

// ThreeCycles returns every directed 3-cycle (u,v,w) with u->v->w->u,
// reported once per cycle with u the smallest id in the cycle.
func (g *Graph) ThreeCycles() [][3]int {
	var out [][3]int
	for u := 0; u < g.n; u++ {
		if g.deleted[u] {
			continue
		}
		for _, v := range g.out[u] {
			if v <= u || g.deleted[v] {
				continue
			}
			for _, w := range g.out[v] {
				if w <= u || w == v || g.deleted[w] {
					continue
				}
				if containers.ContainsSorted(g.out[w], u) {
					out = append(out, [3]int{u, v, w})
				}
			}
		}
	}
	return out
}

// WeakThreeCliques returns directed 3-cycles (u,v,w) for which at least
// one of the three possible "chords" (a direct arc skipping the third
// vertex the long way around) is absent, meaning the triple cannot be
// folded into an undirected 3-clique but still yields a useful rotation
// for constraint generation — grounded on the same reachability idea as
// ThreeCycles, one level weaker.
func (g *Graph) WeakThreeCliques() [][3]int {
	threeCycles := g.ThreeCycles()
	var out [][3]int
	for _, c := range threeCycles {
		u, v, w := c[0], c[1], c[2]
		mutual := containers.ContainsSorted(g.out[v], u) &&
			containers.ContainsSorted(g.out[w], v) &&
			containers.ContainsSorted(g.out[u], w)
		if !mutual {
			out = append(out, c)
		}
	}
	return out
}

// TwinPair is a pair of vertices sharing identical out- and in-adjacency
// (other than each other).
type TwinPair struct {
	A, B int
}

// TwinCliques returns every pair of non-deleted vertices whose
// out-neighbor and in-neighbor sets agree once each other's id is
// disregarded.
func (g *Graph) TwinCliques() []TwinPair {
	var out []TwinPair
	for u := 0; u < g.n; u++ {
		if g.deleted[u] {
			continue
		}
		for v := u + 1; v < g.n; v++ {
			if g.deleted[v] {
				continue
			}
			if sameAdjacency(g.out[u], g.out[v], u, v) && sameAdjacency(g.in[u], g.in[v], u, v) {
				out = append(out, TwinPair{A: u, B: v})
			}
		}
	}
	return out
}

// sameAdjacency reports whether a and b are equal once occurrences of
// ignoreA/ignoreB are stripped from each.
func sameAdjacency(a, b []int, ignoreA, ignoreB int) bool {
	strip := func(s []int, ignore int) []int {
		out := make([]int, 0, len(s))
		for _, v := range s {
			if v != ignore {
				out = append(out, v)
			}
		}
		return out
	}
	sa := strip(a, ignoreB)
	sb := strip(b, ignoreA)
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
