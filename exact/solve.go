package exact

import (
	"time"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/reduction"
)

// Algorithm selects which exact strategy SolveWithConfig dispatches each
// strongly connected component to.
type Algorithm int

const (
	// AlgorithmILP runs the cutting-plane MILP driver (spec 4.6.2). It is
	// the documented default.
	AlgorithmILP Algorithm = iota
	// AlgorithmBranchAndReduce runs the split-and-reduce branch-and-bound
	// search (spec 4.6.1) instead.
	AlgorithmBranchAndReduce
)

// Config holds every tunable the top-level solve threads down into
// whichever per-component strategy it dispatches to.
type Config struct {
	// Algorithm picks the per-SCC exact strategy.
	Algorithm Algorithm
	// ReduceFrequency controls how often BranchAndReduce re-runs a full
	// split-reduce (every level when <= 0). Unused by AlgorithmILP.
	ReduceFrequency int
	// VCSolverPath is the external vertex cover solver binary used by
	// AlgorithmILP. An empty path makes every vcadapter call fail fast,
	// falling back to the in-process MILP/heuristic path.
	VCSolverPath string
	// VCTimeout bounds how long the external vertex cover solver may run.
	VCTimeout time.Duration
	// Seed drives every deterministic RNG used during the solve.
	Seed int64
}

// DefaultConfig returns the configuration cmd/dfvs uses absent explicit
// flags: the ILP cutting-plane driver, full reduction every level, no
// external vertex cover solver, a 300s VC timeout, and seed 0.
func DefaultConfig() Config {
	return Config{
		Algorithm:       AlgorithmILP,
		ReduceFrequency: 1,
		VCSolverPath:    "",
		VCTimeout:       300 * time.Second,
		Seed:            0,
	}
}

// Solve returns a minimum feedback vertex set for g using DefaultConfig.
func Solve(g *graphstore.Graph) []int {
	return SolveWithConfig(g, DefaultConfig())
}

// SolveWithConfig returns a minimum feedback vertex set for g: it first
// runs a heuristic reduce over the whole graph, compresses the residue,
// decomposes it into strongly connected components via Tarjan, and
// dispatches each nontrivial component to cfg.Algorithm independently —
// a feedback vertex set never needs a vertex outside some cycle, and
// every cycle lies entirely within one SCC.
func SolveWithConfig(g *graphstore.Graph, cfg Config) []int {
	work := g.Clone()
	red := reduction.HeuristicReduce(work)
	solution := append([]int(nil), red.Forced...)

	compressed, newToOld := work.Compress()

	for _, scc := range compressed.Tarjan(false) {
		sub := compressed.InducedSubgraph(scc)

		var partial []int
		switch cfg.Algorithm {
		case AlgorithmBranchAndReduce:
			partial = BranchAndReduce(sub, cfg.ReduceFrequency, cfg.Seed)
		default:
			partial = CuttingPlaneSolve(sub, cfg.VCSolverPath, cfg.VCTimeout, cfg.Seed)
		}

		for _, v := range partial {
			solution = append(solution, newToOld[v])
		}
	}

	return solution
}
