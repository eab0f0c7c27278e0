package graphstore

import "github.com/katalvlaran/dfvs/containers"

// color is the tri-color DFS scratch state used by cycle detection and
// acyclicity checks. It is always allocated fresh per call and dropped at
// scope exit; Graph itself carries no persistent coloring.
type color uint8

const (
	unvisited color = iota // not yet discovered
	visiting                // on the current DFS path
	exhausted               // fully explored, cannot lead to a new cycle
)

// Graph is a mutable directed graph over the fixed vertex range [0,n).
//
// Each vertex keeps a sorted, duplicate-free slice of out-neighbors and a
// parallel sorted slice of in-neighbors. A deleted vertex has both lists
// emptied; TotalVertices always reports the original n, Vertices reports
// the count of non-deleted vertices.
type Graph struct {
	n         int
	out       [][]int
	in        [][]int
	deleted   []bool
	forbidden []bool
}

// NewGraph returns an empty graph on n vertices (ids 0..n-1), no arcs.
func NewGraph(n int) *Graph {
	g := &Graph{
		n:         n,
		out:       make([][]int, n),
		in:        make([][]int, n),
		deleted:   make([]bool, n),
		forbidden: make([]bool, n),
	}
	return g
}

// AddArc inserts the arc u->v, maintaining the sorted-adjacency invariant.
// Idempotent: adding an existing arc is a no-op.
func (g *Graph) AddArc(u, v int) {
	g.out[u] = containers.InsertSorted(g.out[u], v)
	g.in[v] = containers.InsertSorted(g.in[v], u)
}

// SetOutAdjacency replaces vertex source's out-adjacency with targets
// (sorted internally) and adds the matching in-adjacency entries.
func (g *Graph) SetOutAdjacency(source int, targets []int) {
	sorted := append([]int(nil), targets...)
	sortInts(sorted)
	g.out[source] = sorted
	for _, t := range sorted {
		g.in[t] = containers.InsertSorted(g.in[t], source)
	}
}

// TotalVertices returns n, the size of the original id space.
func (g *Graph) TotalVertices() int {
	return g.n
}

// Vertices returns the count of non-deleted vertices.
func (g *Graph) Vertices() int {
	count := 0
	for i := 0; i < g.n; i++ {
		if !g.deleted[i] {
			count++
		}
	}
	return count
}

// IsEmpty reports whether every vertex has been deleted.
func (g *Graph) IsEmpty() bool {
	for i := 0; i < g.n; i++ {
		if !g.deleted[i] {
			return false
		}
	}
	return true
}

// IsDeleted reports whether v has been removed.
func (g *Graph) IsDeleted(v int) bool {
	return g.deleted[v]
}

// IsForbidden reports whether v is marked not-reducible.
func (g *Graph) IsForbidden(v int) bool {
	return g.forbidden[v]
}

// OutNeighbors returns v's sorted out-neighbor slice. Callers must not
// mutate the returned slice.
func (g *Graph) OutNeighbors(v int) []int {
	return g.out[v]
}

// InNeighbors returns v's sorted in-neighbor slice. Callers must not
// mutate the returned slice.
func (g *Graph) InNeighbors(v int) []int {
	return g.in[v]
}

// ActiveVertices returns the sorted slice of non-deleted vertex ids.
func (g *Graph) ActiveVertices() []int {
	result := make([]int, 0, g.n)
	for i := 0; i < g.n; i++ {
		if !g.deleted[i] {
			result = append(result, i)
		}
	}
	return result
}

// MarkForbidden marks every vertex in vs as not reducible.
func (g *Graph) MarkForbidden(vs []int) {
	for _, v := range vs {
		g.forbidden[v] = true
	}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		n:         g.n,
		out:       make([][]int, g.n),
		in:        make([][]int, g.n),
		deleted:   append([]bool(nil), g.deleted...),
		forbidden: append([]bool(nil), g.forbidden...),
	}
	for i := 0; i < g.n; i++ {
		clone.out[i] = append([]int(nil), g.out[i]...)
		clone.in[i] = append([]int(nil), g.in[i]...)
	}
	return clone
}

// sortInts is a tiny ascending sort used where we build a fresh adjacency
// slice from an unordered set; kept local to avoid importing "sort" just
// for one call site per file.
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
