package graphstore

// EdgeCycleCover returns, for every arc (u,v) in g, a shortest cycle
// through that arc: the arc itself plus a shortest v-to-u path found by
// BFS. Each cycle is then passed through shortcut to see if a smaller
// cycle is embedded in it. The LP lower bound and the exact drivers use
// DisjointEdgeCycleCover, not this function.
func (g *Graph) EdgeCycleCover() [][]int {
	var cycles [][]int
	for u := 0; u < g.n; u++ {
		if g.deleted[u] {
			continue
		}
		for _, v := range g.out[u] {
			path, ok := g.shortestPath(v, u, nil)
			if !ok {
				continue
			}
			// path runs v..u inclusive; drop the trailing u so the cycle
			// is represented as a simple vertex list with an implicit
			// closing arc from the last entry back to u.
			cycle := append([]int{u}, path[:len(path)-1]...)
			cycles = append(cycles, g.shortcut(cycle))
		}
	}
	return cycles
}

// DisjointEdgeCycleCover greedily builds a set of vertex-disjoint cycles
// avoiding every vertex in fvs, used to derive a packing-based lower
// bound: each disjoint cycle forces at least one more vertex into any
// feedback vertex set.
func (g *Graph) DisjointEdgeCycleCover(fvs []int) [][]int {
	used := make([]bool, g.n)
	for _, v := range fvs {
		used[v] = true
	}

	var cycles [][]int
	for u := 0; u < g.n; u++ {
		if g.deleted[u] || used[u] {
			continue
		}
		for _, v := range g.out[u] {
			if used[v] {
				continue
			}
			avoid := make([]int, 0, g.n)
			for w := 0; w < g.n; w++ {
				if used[w] && w != v {
					avoid = append(avoid, w)
				}
			}
			path, ok := g.shortestPath(v, u, avoid)
			if !ok {
				continue
			}
			cycle := append([]int{u}, path[:len(path)-1]...)
			cycle = g.shortcut(cycle)
			for _, w := range cycle {
				used[w] = true
			}
			cycles = append(cycles, cycle)
			break
		}
	}
	return cycles
}

// shortestPath runs a BFS from src to dst over non-deleted, non-avoided
// vertices and returns the vertex path including both endpoints.
func (g *Graph) shortestPath(src, dst int, avoid []int) ([]int, bool) {
	skip := make([]bool, g.n)
	for v := 0; v < g.n; v++ {
		skip[v] = g.deleted[v]
	}
	for _, v := range avoid {
		skip[v] = true
	}
	if skip[src] || skip[dst] {
		return nil, false
	}

	prev := make([]int, g.n)
	for i := range prev {
		prev[i] = -2
	}
	prev[src] = -1

	queue := []int{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			var path []int
			for v := dst; v != -1; v = prev[v] {
				path = append([]int{v}, path...)
			}
			return path, true
		}
		for _, w := range g.out[cur] {
			if skip[w] || prev[w] != -2 {
				continue
			}
			prev[w] = cur
			queue = append(queue, w)
		}
	}
	return nil, false
}

// shortcut looks for a chord among cycle's vertices that admits a shorter
// embedded cycle and, if found, returns that shorter cycle instead. cycle
// is a simple vertex list with an implicit closing arc from its last
// entry back to its first.
func (g *Graph) shortcut(cycle []int) []int {
	if len(cycle) <= 3 {
		return cycle
	}

	best := cycle
	for i := 0; i < len(cycle); i++ {
		for j := i + 2; j < len(cycle); j++ {
			if i == 0 && j == len(cycle)-1 {
				continue // this is the cycle's own closing arc, not a chord
			}
			if g.hasArc(cycle[j], cycle[i]) {
				candidate := append([]int{}, cycle[i:j+1]...)
				if len(candidate) < len(best) {
					best = candidate
				}
			}
		}
	}
	return best
}

// hasArc reports whether u->v is an arc of g.
func (g *Graph) hasArc(u, v int) bool {
	for _, w := range g.out[u] {
		if w == v {
			return true
		}
		if w > v {
			break
		}
	}
	return false
}
