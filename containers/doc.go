// Package containers provides the dense, range-indexed set and the sorted-slice
// algebra that the rest of the solver leans on instead of generic hash sets.
//
// RangeSet assumes a fixed universe [0,R) and gives O(1) insert/contains/remove
// by keeping a position table alongside the dense member slice (swap-remove,
// same trick as a classic "sparse set"). Difference and Intersection assume
// both operands are sorted ascending with distinct elements — exactly what
// graphstore.Graph's adjacency lists guarantee — and run in O(n+m) via a
// merge-style sweep.
package containers
