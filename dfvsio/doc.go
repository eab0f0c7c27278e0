// Package dfvsio reads and writes the PACE-style METIS graph format: a
// header line "n m" (comment lines starting with '%' are skipped
// anywhere they appear), followed by n adjacency lines, each a
// whitespace-separated list of 1-indexed out-neighbor ids for that
// vertex. A solution is written back the same way the original solver
// does: one 1-indexed vertex id per line.
package dfvsio
