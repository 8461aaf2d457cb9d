package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/katalvlaran/squaremat/pipeline"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"=== Matrix A (parsed) ===\n1 2 3\n4 5 6\n7 8 9\n",
		"=== B after B[1][2] = 42 ===\n1 1 1\n1 1 42\n1 1 1\n",
		"A[1][2] = 6\n",
		"=== A + B ===\n2 3 4\n5 6 48\n8 9 10\n",
		"=== A % 5 ===\n1 2 3\n4 0 1\n2 3 4\n",
		"=== D ∘= B ===\n1 2 3\n4 5 252\n7 8 9\n",
		"=== A * B ===\n6 6 88\n15 15 220\n24 24 352\n",
		"=== A ^ 2 ===\n30 36 42\n66 81 96\n102 126 150\n",
		"det(A) = 0\n",
		"A >= B: false\n",
		"A == B: false\n",
		"=== E %= 2 ===\n0 0\n1 1\n",
		"=== E -= 1.5 ===\n1.5 1.5\n2.5 2.5\n",
		"=== F++ (value before) ===\n2 3 4\n5 6 7\n8 9 10\n",
		"=== F after F++ ===\n3 4 5\n6 7 8\n9 10 11\n",
		"=== F after F-- ===\n1 2 3\n4 5 6\n7 8 9\n",
	} {
		require.Contains(t, out, want)
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	src := "matrices:\n  A: \"1 2, 3 4\"\nsteps:\n  - {op: mul, args: [A, A], inplace: true}\n  - {op: trace, args: [A]}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, err := execute(t, "run", "-v", path)
	require.NoError(t, err)
	require.Equal(t, "=== mul(A, A) ===\n7 10\n15 22\n\ntrace(A) = 29\n\n", out)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSingleOpCommands(t *testing.T) {
	out, err := execute(t, "det", "4 7, 2 6")
	require.NoError(t, err)
	require.Equal(t, "det = 10\n\n", out)

	out, err = execute(t, "transpose", "1 2, 3 4")
	require.NoError(t, err)
	require.Equal(t, "=== transpose ===\n1 3\n2 4\n\n", out)

	out, err = execute(t, "pow", "1 1, 1 0", "10")
	require.NoError(t, err)
	require.Equal(t, "=== pow 10 ===\n89 55\n55 34\n\n", out)

	out, err = execute(t, "calc", "1 2, 3 4", "mul", "5 6, 7 8")
	require.NoError(t, err)
	require.Equal(t, "=== mul ===\n19 22\n43 50\n\n", out)

	out, err = execute(t, "calc", "1 2, 3 4", "lt", "5 6, 7 8")
	require.NoError(t, err)
	require.Equal(t, "lt: true\n\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "det", "1 2 3")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)

	_, err = execute(t, "calc", "1 2, 3 4", "add", "1")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = execute(t, "calc", "1", "det", "1")
	require.ErrorIs(t, err, pipeline.ErrUnknownOp)

	_, err = execute(t, "pow", "1", "x")
	require.ErrorContains(t, err, "non-negative integer")

	_, err = execute(t, "det")
	require.Error(t, err)

	// Matrices starting with a minus sign follow "--".
	out, err := execute(t, "det", "--", "-1 0, 0 2")
	require.NoError(t, err)
	require.Equal(t, "det = -2\n\n", out)
}
