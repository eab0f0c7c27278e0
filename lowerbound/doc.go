// Package lowerbound builds and solves the LP relaxation used to prune
// exact search: one 0/1 variable per active vertex, and one row per
// structural witness that forces some number of those vertices to be
// chosen — an undirected edge (at least 1 of its 2 endpoints), a
// vertex-disjoint cycle cover cycle (at least 1 of its vertices), a
// 3-clique (at least 2), a 4-clique (at least 3), and a pair of twin
// vertices joined by an undirected edge (at least 1). Twin classes of
// more than two vertices are not combined into one row. Rounding the LP relaxation's fractional optimum up
// gives a valid integer lower bound on the minimum feedback vertex set.
package lowerbound
