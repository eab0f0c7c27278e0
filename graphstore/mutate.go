package graphstore

import "github.com/katalvlaran/dfvs/containers"

// RemoveVertex deletes v: empties its adjacency on both sides and marks it
// deleted. TotalVertices is unaffected; the id slot simply goes inert.
func (g *Graph) RemoveVertex(v int) {
	if g.deleted[v] {
		return
	}
	for _, u := range g.out[v] {
		g.in[u] = containers.RemoveSorted(g.in[u], v)
	}
	for _, u := range g.in[v] {
		g.out[u] = containers.RemoveSorted(g.out[u], v)
	}
	g.out[v] = nil
	g.in[v] = nil
	g.deleted[v] = true
}

// RemoveVertices deletes every vertex in vs.
func (g *Graph) RemoveVertices(vs []int) {
	for _, v := range vs {
		g.RemoveVertex(v)
	}
}

// RemoveUndirectedEdges deletes both arcs of every star's center-neighbor
// pair, turning the pairs back into non-edges without deleting the
// vertices themselves. Used after a split decomposer has consumed a star
// as part of the undirected companion.
func (g *Graph) RemoveUndirectedEdges(stars []Star) {
	for _, s := range stars {
		for _, nb := range s.Neighbors {
			g.removeArc(s.Center, nb)
			g.removeArc(nb, s.Center)
		}
	}
}

// removeArc deletes a single u->v arc, if present, without touching v->u.
func (g *Graph) removeArc(u, v int) {
	g.out[u] = containers.RemoveSorted(g.out[u], v)
	g.in[v] = containers.RemoveSorted(g.in[v], u)
}

// InducedSubgraph returns a new graph over the same id range [0,n)
// containing only the arcs whose both endpoints are in keep; every vertex
// not in keep comes back deleted. keep need not be sorted.
func (g *Graph) InducedSubgraph(keep []int) *Graph {
	mask := make([]bool, g.n)
	for _, v := range keep {
		mask[v] = true
	}

	out := NewGraph(g.n)
	for v := 0; v < g.n; v++ {
		if !mask[v] {
			out.deleted[v] = true
			continue
		}
		for _, w := range g.out[v] {
			if mask[w] {
				out.AddArc(v, w)
			}
		}
	}
	out.forbidden = append([]bool(nil), g.forbidden...)

	return out
}

// Compress drops every deleted vertex and every vertex with empty in- and
// out-adjacency, producing a graph over a smaller dense id range. It
// returns the compressed graph and a newToOld slice such that
// newToOld[i] is the original id of compressed vertex i.
func (g *Graph) Compress() (*Graph, []int) {
	newToOld := make([]int, 0, g.n)
	oldToNew := make([]int, g.n)
	for i := range oldToNew {
		oldToNew[i] = -1
	}

	for v := 0; v < g.n; v++ {
		if g.deleted[v] {
			continue
		}
		if len(g.out[v]) == 0 && len(g.in[v]) == 0 {
			continue
		}
		oldToNew[v] = len(newToOld)
		newToOld = append(newToOld, v)
	}

	compressed := NewGraph(len(newToOld))
	for newU, oldU := range newToOld {
		for _, oldV := range g.out[oldU] {
			if newV := oldToNew[oldV]; newV != -1 {
				compressed.AddArc(newU, newV)
			}
		}
	}

	return compressed, newToOld
}

// Add overlays other onto g: the result is a fresh graph holding every
// arc leaving a non-deleted vertex of either graph, with no vertex marked
// deleted or forbidden. Used to rejoin the directed residue and the
// undirected companion of a split decomposition.
func (g *Graph) Add(other *Graph) *Graph {
	n := g.n
	if other.n > n {
		n = other.n
	}

	result := NewGraph(n)
	merge := func(src *Graph) {
		for v := 0; v < src.n; v++ {
			if src.deleted[v] {
				continue
			}
			for _, w := range src.out[v] {
				result.AddArc(v, w)
			}
		}
	}
	merge(g)
	merge(other)

	return result
}
