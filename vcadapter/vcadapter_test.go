package vcadapter_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfvs/graphstore"
	"github.com/katalvlaran/dfvs/vcadapter"
)

// writeFakeSolver drops a tiny shell script standing in for the external
// vertex cover binary: it ignores stdin and prints a fixed solution.
func writeFakeSolver(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake solver script is a shell script")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake_vc_solver.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestSolveParsesSubprocessOutput(t *testing.T) {
	path := writeFakeSolver(t, "cat >/dev/null\nprintf 'header\\n1\\n3\\n'\n")

	g := graphstore.NewGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 0)

	solution, ok := vcadapter.Solve(context.Background(), path, g, time.Second)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, solution)
}

func TestSolveReturnsFalseOnMissingBinary(t *testing.T) {
	g := graphstore.NewGraph(2)
	_, ok := vcadapter.Solve(context.Background(), "/nonexistent/binary", g, time.Second)
	assert.False(t, ok)
}
