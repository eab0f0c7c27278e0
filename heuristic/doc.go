// Package heuristic implements the two simulated-annealing solvers used
// to produce an upper bound before the exact core starts branching:
// SAOrdering heuristically reduces and compresses its input graph, then
// anneals a topological-order permutation over the compressed working
// copy before remapping the result back to the caller's ids and unioning
// it with the reduction's forced vertices, while SAHS anneals a
// hitting-set assignment over a constraint.Constraint instance directly.
// Both use a deterministic, seeded RNG so a run is fully reproducible
// given the same seed.
package heuristic
