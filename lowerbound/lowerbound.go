package lowerbound

import (
	"math"

	"github.com/katalvlaran/dfvs/containers"
	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/ilp"
)

// Compute builds the clique/cycle-cover LP relaxation for g and returns
// ceil(objective) as an integer lower bound on g's minimum feedback
// vertex set. tol is the simplex feasibility tolerance gonum's lp.BNB
// expects (1e-6 is a reasonable default).
func Compute(g *graphstore.Graph, tol float64) (int, error) {
	active := g.ActiveVertices()
	if len(active) == 0 {
		return 0, nil
	}

	varOf := make(map[int]int, len(active))
	model := ilp.NewModel()
	for _, v := range active {
		varOf[v] = model.AddVariable(true)
	}

	addAtLeast := func(vertices []int, k int) {
		if len(vertices) == 0 {
			return
		}
		vars := make([]int, len(vertices))
		coeffs := make([]float64, len(vertices))
		for i, v := range vertices {
			vars[i] = varOf[v]
			coeffs[i] = 1
		}
		model.AddRow(vars, coeffs, ilp.GreaterEqual, float64(k))
	}

	for v := 0; v < g.TotalVertices(); v++ {
		if g.IsDeleted(v) {
			continue
		}
		for _, w := range g.UndirectedNeighbors(v) {
			if w > v {
				addAtLeast([]int{v, w}, 1)
			}
		}
	}

	for _, cycle := range g.DisjointEdgeCycleCover(nil) {
		addAtLeast(cycle, 1)
	}

	for _, t := range g.ThreeCliques() {
		addAtLeast([]int{t[0], t[1], t[2]}, 2)
	}

	for _, q := range g.FourCliques() {
		addAtLeast([]int{q[0], q[1], q[2], q[3]}, 3)
	}

	for _, twin := range g.TwinCliques() {
		// Only twins joined by an undirected edge form a twin clique;
		// non-adjacent twins need not lie on any cycle at all.
		if !containers.ContainsSorted(g.UndirectedNeighbors(twin.A), twin.B) {
			continue
		}
		addAtLeast([]int{twin.A, twin.B}, 1)
	}

	objective, _, err := model.Solve(true, tol)
	if err != nil {
		return 0, err
	}

	return int(math.Ceil(objective - 1e-9)), nil
}
