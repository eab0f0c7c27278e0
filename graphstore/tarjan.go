package graphstore

// Tarjan computes the strongly connected components of g's non-deleted
// vertices using an explicit-stack iteration (no recursion, so depth is
// bounded only by heap, not goroutine stack). If alwaysReport is false,
// singleton components with no self-loop are omitted from the result,
// matching the "nontrivial SCC" notion the reduction layer cares about.
func (g *Graph) Tarjan(alwaysReport bool) [][]int {
	const unset = -1

	index := make([]int, g.n)
	lowlink := make([]int, g.n)
	onStack := make([]bool, g.n)
	for v := range index {
		index[v] = unset
	}

	var stack []int // Tarjan's SCC accumulation stack
	var sccs [][]int
	nextIndex := 0

	type callFrame struct {
		v       int
		childIt int
	}

	for root := 0; root < g.n; root++ {
		if g.deleted[root] || index[root] != unset {
			continue
		}

		work := []callFrame{{v: root, childIt: 0}}
		index[root] = nextIndex
		lowlink[root] = nextIndex
		nextIndex++
		stack = append(stack, root)
		onStack[root] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.v
			recursed := false

			for top.childIt < len(g.out[v]) {
				w := g.out[v][top.childIt]
				top.childIt++
				if g.deleted[w] {
					continue
				}

				if index[w] == unset {
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					work = append(work, callFrame{v: w, childIt: 0})
					recursed = true
					break
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
			}

			if recursed {
				continue
			}

			// v is finished: pop it, propagate lowlink to parent, and if
			// v is a root, pop the SCC off the accumulation stack.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var scc []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				if alwaysReport || len(scc) > 1 || g.hasSelfLoop(scc[0]) {
					sccs = append(sccs, scc)
				}
			}
		}
	}

	return sccs
}

// hasSelfLoop reports whether v has an arc to itself.
func (g *Graph) hasSelfLoop(v int) bool {
	return g.HasSelfLoop(v)
}

// HasSelfLoop reports whether v has an arc to itself.
func (g *Graph) HasSelfLoop(v int) bool {
	for _, w := range g.out[v] {
		if w == v {
			return true
		}
		if w > v {
			break
		}
	}
	return false
}
