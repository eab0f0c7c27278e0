// Package exact implements the two exact feedback vertex set strategies
// and the top-level dispatch between them. Solve and SolveWithConfig
// reduce the input to a fixpoint, compress it, decompose the residue
// into strongly connected components (package graphstore's Tarjan), and
// hand each component independently to one of:
//
//   - CuttingPlaneSolve, the ILP cutting-plane driver: an undirected
//     component goes straight to the external vertex cover solver
//     (package vcadapter); a mixed one is split-reduced (package split)
//     and its directed residue modeled as a 0/1 MILP (package ilp),
//     seeded with cuts from a hitting-set upper bound and tightened by a
//     fresh disjoint cycle cover each round until the integral solution
//     is acyclic. This is the documented default.
//   - BranchAndReduce, split-and-reduce branch-and-bound: at every
//     recursive call it re-splits (and, every few levels, fully
//     reduces) the instance, checks the LP lower bound (package
//     lowerbound) against the best solution size found so far to prune,
//     and otherwise branches on the split's star structure or a witness
//     cycle — keeping whichever branch returns the smaller solution.
package exact
