package dfvsio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dfvs/graphstore"
)

// ErrEmptyInput is returned by Read when the input has no header line at
// all (not even after skipping comments).
var ErrEmptyInput = errors.New("dfvsio: empty input, no header line found")

// Read parses a METIS-style directed graph from r: a header line "n m",
// then n adjacency lines of 1-indexed out-neighbor ids. Lines starting
// with '%' are treated as comments and skipped wherever they appear.
func Read(r io.Reader) (*graphstore.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "%") {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, ErrEmptyInput
	}

	fields := strings.Fields(header)
	if len(fields) < 1 {
		return nil, fmt.Errorf("dfvsio: malformed header %q", header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("dfvsio: parsing vertex count: %w", err)
	}

	g := graphstore.NewGraph(n)
	for v := 0; v < n; v++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("dfvsio: expected %d adjacency lines, got %d", n, v)
		}
		for _, tok := range strings.Fields(line) {
			id, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("dfvsio: parsing adjacency entry %q: %w", tok, err)
			}
			g.AddArc(v, id-1)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dfvsio: scanning input: %w", err)
	}

	return g, nil
}

// Write emits solution (0-indexed vertex ids) to w, one 1-indexed id per
// line, matching the format the PACE verifier expects.
func Write(w io.Writer, solution []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range solution {
		if _, err := fmt.Fprintln(bw, v+1); err != nil {
			return fmt.Errorf("dfvsio: writing solution: %w", err)
		}
	}
	return bw.Flush()
}
