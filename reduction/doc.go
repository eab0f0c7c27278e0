// Package reduction implements the kernelization rules applied to a
// graphstore.Graph before heuristic search or exact branching: removing
// self-loops (forcing their vertex), collapsing SCC structure, and
// short-circuiting degree-1 vertices. Every rule is sound — it never
// removes a vertex the reduction doesn't prove is either forced into
// every minimum feedback vertex set or absent from some minimum one — so
// applying them to fixpoint never changes the optimum, only shrinks the
// instance the exact core has to search.
//
// Two entry points share that rule set: HeuristicReduce never fails, for
// callers with no budget to track, and Reduce additionally takes an
// upper bound and reports failure when, at the fixpoint, forced vertices
// alone exceed it, letting a branch-and-bound search prune without running the
// rest of the branch.
package reduction
