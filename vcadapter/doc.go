// Package vcadapter bridges to an external vertex cover solver binary:
// it serializes the undirected companion graph produced by the split
// decomposer as a "p td n m" header followed by one 1-indexed edge line
// per undirected edge, feeds it to the subprocess over stdin, and parses
// the solver's stdout (one 1-indexed vertex id per line, discarding its
// first line — the reference solver's header) back into a 0-indexed
// vertex set. The cutting-plane driver (package exact) is its only
// caller: a purely undirected instance is handed straight to it, and the
// split-decomposed undirected companion of a mixed instance is offered
// to it before falling back to the in-process MILP/heuristic path.
package vcadapter
