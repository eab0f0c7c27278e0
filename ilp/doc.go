// Package ilp provides a small mixed-integer linear program builder over
// gonum.org/v1/gonum/optimize/convex/lp's exported branch-and-bound
// solver. It exists so the lowerbound and exact packages can describe a
// model in terms of named 0/1 and continuous variables plus "at least",
// "at most" and "equals" rows instead of hand-assembling dense
// coefficient matrices themselves.
package ilp
