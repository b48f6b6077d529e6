package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbqpcfg/pbqp"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const diamondYAML = `
name: diamond
blocks:
  - name: entry
    succs: [b1, b2]
  - name: b1
    succs: [b3]
  - name: b2
    succs: [b3]
  - name: b3
`

func TestRunMST(t *testing.T) {
	path := writeFile(t, "diamond.yaml", diamondYAML)

	var buf bytes.Buffer
	require.NoError(t, runMST(context.Background(), &buf, []string{path}, "", true))

	out := buf.String()
	assert.Contains(t, out, "Function: diamond\n")
	assert.Contains(t, out, "  Number of Edges: 6 (*: Instrument, C: CriticalEdge, -: Removed)\n")
	assert.Contains(t, out, "counter: b2 -> b3\n")
}

func TestRunMSTWithProfile(t *testing.T) {
	path := writeFile(t, "diamond.yaml", diamondYAML)
	profile := writeFile(t, "profile.yaml", `
blocks: {entry: 100, b1: 1, b2: 99, b3: 100}
edges:
  - {from: entry, to: b1, count: 1}
  - {from: entry, to: b2, count: 99}
`)

	var buf bytes.Buffer
	require.NoError(t, runMST(context.Background(), &buf, []string{path}, profile, false))

	// The hot side joins the tree; the cold side gets the counter.
	assert.Contains(t, buf.String(), "counter: entry -> b1\n")
	assert.NotContains(t, buf.String(), "counter: b2 -> b3\n")
	assert.NotContains(t, buf.String(), "counter: entry -> b2\n")
}

func TestRunMSTErrors(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	err := runMST(ctx, &buf, []string{"a.yaml", "b.yaml"}, "p.yaml", false)
	assert.Error(t, err)

	err = runMST(ctx, &buf, []string{filepath.Join(t.TempDir(), "missing.yaml")}, "", false)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.yaml", "blocks:\n  - name: a\n    succs: [zz]\n")
	assert.Error(t, runMST(ctx, &buf, []string{bad}, "", false))
}

func TestRunCosts(t *testing.T) {
	path := writeFile(t, "costs.yaml", `
vectors:
  - [0, 1, .inf]
  - [0, 1, .inf]
  - [2, 0]
matrices:
  - [[0, 0], [0, .inf]]
  - [[0, 0], [0, .inf]]
`)

	var buf bytes.Buffer
	require.NoError(t, runCosts(context.Background(), &buf, path))

	out := buf.String()
	h := pbqp.VectorOf(0, 1, math.Inf(1)).Hash()
	assert.Contains(t, out, "vector 0: [ 0, 1, +Inf ] hash=")
	assert.Contains(t, out, "opts=2 disallowed=1 refs=1\n")
	assert.Contains(t, out, "opts=2 disallowed=1 refs=2\n")
	assert.Contains(t, out, "worst_row=1 worst_col=1 refs=2\n[ 0, 0 ]\n[ 0, +Inf ]\n")
	assert.Contains(t, out, "pool: 2/3 vectors, 1/2 matrices\n")
	assert.Contains(t, out, fmt.Sprintf("hash=%016x opts=2", h))
}

func TestRunCostsRagged(t *testing.T) {
	path := writeFile(t, "ragged.yaml", "matrices:\n  - [[0, 1], [2]]\n")

	var buf bytes.Buffer
	err := runCosts(context.Background(), &buf, path)
	assert.ErrorIs(t, err, pbqp.ErrDimensionMismatch)
}
