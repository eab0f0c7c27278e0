// Package split implements the split decomposer: it repeatedly pulls
// every undirected edge (a mutual 2-cycle) out of a graphstore.Graph into
// a hitting-set instance over the constraint package's Constraint type,
// reduces the remaining directed residue, and hands the reduced
// constraint instance back through constraint.ReduceHittingSet before
// extracting the next round of stars — continuing until no star remains
// or a round forces nothing new. The result separates a purely "directed
// residue" graph the exact core's branch-and-reduce or ILP driver can
// attack without worrying about 2-cycles from an accumulated undirected
// companion graph the LP lower bound, SA-HS heuristic, and external
// vertex cover solver reason about independently, plus a heuristic
// hitting-set upper bound (heuristic.SAHSSolve, extended with extra
// disjoint cycles) that is already a valid feedback vertex set of the
// directed residue.
package split
