// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/builder"
)

const sampleWord = "--word=3,2,2,-4,-1,-1,-2,-3,-4"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&app{logger: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestTrackCmd(t *testing.T) {
	out, err := run(t, "track", "-n", "5", sampleWord)
	require.NoError(t, err)
	assert.Equal(t, "bottom: [1 2 3 4 5]\ntop:    [1 5 4 2 3]\nunder:  [2 2 5 4 1 5 5 5 5]\n", out)
}

func TestTrackCmdGenerated(t *testing.T) {
	out, err := run(t, "track", "-n", "3", "--torus", "2")
	require.NoError(t, err)
	assert.Equal(t, "bottom: [1 2 3]\ntop:    [2 3 1]\nunder:  [3 1 1 2]\n", out)

	out, err = run(t, "track", "-n", "3", "--torus", "2", "--mirror")
	require.NoError(t, err)
	assert.Equal(t, "bottom: [1 2 3]\ntop:    [2 3 1]\nunder:  [2 2 3 3]\n", out)

	first, err := run(t, "track", "-n", "5", "--random", "8", "--seed", "3")
	require.NoError(t, err)
	second, err := run(t, "track", "-n", "5", "--random", "8", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	under := strings.TrimSuffix(strings.TrimPrefix(strings.Split(first, "\n")[2], "under:  ["), "]")
	assert.Len(t, strings.Fields(under), 8)

	_, err = run(t, "track", "-n", "4", "--plait=-2")
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestClassesCmd(t *testing.T) {
	out, err := run(t, "classes", "-n", "5", "-k", "1", sampleWord)
	require.NoError(t, err)
	assert.Equal(t,
		"class 1 [y]: (1,+1)\n"+
			"class 2 [t2]: (2,+1) (5,+1) (4,-1) (3,-1)\n"+
			"labels: [2 2 2 2 1 2 2 2 2]\n", out)
}

func TestBurauCmd(t *testing.T) {
	out, err := run(t, "burau", "-n", "3", "-k", "1", "--word=1")
	require.NoError(t, err)
	assert.Equal(t, "[-y^-1, y^-1]\n[0, 1]\n", out)
}

func TestPolyCmd(t *testing.T) {
	out, err := run(t, "poly", "-n", "4", "-k", "1", "--word=1,-2,3,-1")
	require.NoError(t, err)
	assert.Equal(t, "x*y^-1 - y^-1\n", out)
}

func TestDataCmd(t *testing.T) {
	out, err := run(t, "data", "-n", "4", "-k", "1", "--word=1 -2 3 -1")
	require.NoError(t, err)
	assert.Equal(t, "U: y*s2\nV: x\ntable:\n[0, 0]\n[0, 0]\n", out)
}

func TestCmdErrors(t *testing.T) {
	_, err := run(t, "track", "-n", "3", "--word=3")
	require.ErrorIs(t, err, braid.ErrInvalidGenerator)

	_, err = run(t, "classes", "-n", "4", "-k", "3")
	require.ErrorIs(t, err, braid.ErrInvalidCapCount)

	_, err = run(t, "poly", "-n", "4", "--word=1,x")
	require.ErrorIs(t, err, braid.ErrInvalidWord)

	_, err = run(t, "poly", "--word=1")
	require.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`workers: 2
log_level: error
jobs:
  - name: components
    strands: 4
    caps: 1
    word: [1, -2, 3, -1]
  - name: single
    strands: 3
    caps: 1
    word: [1]
`), 0o644))

	out, err := run(t, "batch", "-c", path)
	require.NoError(t, err)
	assert.Equal(t,
		"== components (n=4, k=1)\n"+
			"poly: x*y^-1 - y^-1\n"+
			"U: y*s2\nV: x\ntable:\n[0, 0]\n[0, 0]\n"+
			"== single (n=3, k=1)\n"+
			"poly: y^-1\n"+
			"U: y\nV: x\ntable:\n[0]\n", out)
}

func TestBatchCmdReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`jobs:
  - name: all-caps
    strands: 4
    caps: 2
    word: [1, 2, 3]
`), 0o644))

	out, err := run(t, "batch", "-c", path)
	require.Error(t, err)
	assert.Contains(t, out, "== all-caps (n=4, k=2)\nerror: ")
	assert.Contains(t, err.Error(), "1 of 1 jobs failed")
}

func TestBatchCmdNoJobs(t *testing.T) {
	_, err := run(t, "batch", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
