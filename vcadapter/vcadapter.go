package vcadapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/dfvs/graphstore"
)

// Solve hands g's undirected edges to the external vertex cover solver at
// binaryPath over stdin, waits up to timeout for it to finish, and parses
// its stdout into a 0-indexed vertex cover. It returns (nil, false) if the
// subprocess fails or times out — callers fall back to the in-process LP
// or heuristic solver in that case, never treating it as a hard error.
func Solve(ctx context.Context, binaryPath string, g *graphstore.Graph, timeout time.Duration) ([]int, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Stdin = strings.NewReader(serialize(g))

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, false
	}

	return parseSolution(stdout.Bytes()), true
}

// serialize renders g's undirected edges in the reference solver's
// DIMACS-style edge-list format: a header line "p td n m" followed by
// exactly one "u v" line (1-indexed) per undirected edge, u<v.
func serialize(g *graphstore.Graph) string {
	var b strings.Builder

	type edge struct{ u, v int }
	var edges []edge
	for v := 0; v < g.TotalVertices(); v++ {
		for _, w := range g.UndirectedNeighbors(v) {
			if w > v {
				edges = append(edges, edge{v, w})
			}
		}
	}

	fmt.Fprintf(&b, "p td %d %d\n", g.TotalVertices(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(&b, "%d %d\n", e.u+1, e.v+1)
	}

	return b.String()
}

// parseSolution reads the external solver's stdout: its first line is a
// header the reference binary emits and is discarded, every subsequent
// line holds a single 1-indexed vertex id.
func parseSolution(out []byte) []int {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) <= 1 {
		return nil
	}

	solution := make([]int, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		solution = append(solution, id-1)
	}

	return solution
}
