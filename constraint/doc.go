// Package constraint provides the Constraint type shared by the split
// decomposer, the SA-HS heuristic and the cutting-plane driver, and the
// hitting-set preprocessing rules the split decomposer uses to shrink a
// hitting-set instance before it reaches the heuristic or exact search.
package constraint
