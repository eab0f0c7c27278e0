package graphstore

// IsCyclic reports whether g contains a directed cycle among its non-deleted
// vertices, via a three-color iterative DFS. Deleted vertices are skipped as
// if absent; forbidden vertices take part like any other.
func (g *Graph) IsCyclic() bool {
	_, found := g.findCycle(nil)
	return found
}

// IsAcyclicWithFVS reports whether removing fvs from g leaves an acyclic
// graph, without mutating g.
func (g *Graph) IsAcyclicWithFVS(fvs []int) bool {
	_, found := g.findCycle(fvs)
	return !found
}

// FindCycleWithFVS searches for a cycle in g after conceptually removing
// fvs, without mutating g. Returns the cycle's vertices in path order and
// true if one was found.
func (g *Graph) FindCycleWithFVS(fvs []int) ([]int, bool) {
	return g.findCycle(fvs)
}

// findCycle runs an explicit-stack three-color DFS over g, treating every
// vertex in excluded as if deleted. It returns the first cycle found, as
// the path from the cycle's closing back-edge target through to the
// current DFS frontier.
func (g *Graph) findCycle(excluded []int) ([]int, bool) {
	skip := make([]bool, g.n)
	for v := 0; v < g.n; v++ {
		skip[v] = g.deleted[v]
	}
	for _, v := range excluded {
		skip[v] = true
	}

	state := make([]color, g.n)

	type frame struct {
		v   int
		idx int
	}

	for start := 0; start < g.n; start++ {
		if skip[start] || state[start] != unvisited {
			continue
		}

		stack := []frame{{v: start, idx: 0}}
		path := []int{start}
		state[start] = visiting

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adv := false

			for top.idx < len(g.out[top.v]) {
				w := g.out[top.v][top.idx]
				top.idx++
				if skip[w] {
					continue
				}
				switch state[w] {
				case unvisited:
					state[w] = visiting
					stack = append(stack, frame{v: w, idx: 0})
					path = append(path, w)
					adv = true
				case visiting:
					cycle := extractCycle(path, w)
					return cycle, true
				case exhausted:
					// already fully explored, cannot close a new cycle
				}
				if adv {
					break
				}
			}

			if adv {
				continue
			}

			state[top.v] = exhausted
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}

	return nil, false
}

// extractCycle slices path starting at the first occurrence of closeAt,
// returning the cycle vertices in order.
func extractCycle(path []int, closeAt int) []int {
	for i, v := range path {
		if v == closeAt {
			out := make([]int, len(path)-i)
			copy(out, path[i:])
			return out
		}
	}
	return nil
}

// FindCycleFromMinimal enumerates, for each vertex in minimal, the cycle
// obtained by excluding every other vertex in minimal from the search —
// used by the exact core to double check that a claimed minimal FVS
// witness is tight: each of its vertices must close some cycle on its own.
func (g *Graph) FindCycleFromMinimal(minimal []int) [][]int {
	cycles := make([][]int, 0, len(minimal))
	for i, v := range minimal {
		excluded := make([]int, 0, len(minimal)-1)
		for j, w := range minimal {
			if j != i {
				excluded = append(excluded, w)
			}
		}
		// Reintroduce v, excluding the rest of the set, and look for a
		// cycle that v itself participates in.
		cycle, found := g.findCycleThrough(v, excluded)
		if found {
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

// findCycleThrough searches for a cycle that passes through through,
// excluding the given vertices from the graph.
func (g *Graph) findCycleThrough(through int, excluded []int) ([]int, bool) {
	skip := make([]bool, g.n)
	for v := 0; v < g.n; v++ {
		skip[v] = g.deleted[v]
	}
	for _, v := range excluded {
		skip[v] = true
	}
	if skip[through] {
		return nil, false
	}

	state := make([]color, g.n)

	type frame struct {
		v   int
		idx int
	}

	stack := []frame{{v: through, idx: 0}}
	path := []int{through}
	state[through] = visiting

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adv := false

		for top.idx < len(g.out[top.v]) {
			w := g.out[top.v][top.idx]
			top.idx++
			if skip[w] {
				continue
			}
			switch state[w] {
			case unvisited:
				state[w] = visiting
				stack = append(stack, frame{v: w, idx: 0})
				path = append(path, w)
				adv = true
			case visiting:
				if w == through {
					cycle := extractCycle(path, w)
					return cycle, true
				}
			case exhausted:
			}
			if adv {
				break
			}
		}

		if adv {
			continue
		}

		state[top.v] = exhausted
		stack = stack[:len(stack)-1]
		path = path[:len(path)-1]
	}

	return nil, false
}
