package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

var fixture = filepath.Join("testdata", "friends.json")

func TestEdges(t *testing.T) {
	out, err := run(t, "edges", fixture)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestChain_Found(t *testing.T) {
	out, err := run(t, "chain", fixture, "1", "3", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Chain struct {
			Found bool    `json:"found"`
			Path  []int64 `json:"path"`
		} `json:"chain"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Chain.Found)
	assert.Equal(t, []int64{1, 2, 3}, got.Chain.Path)
}

func TestChain_NotFound(t *testing.T) {
	out, err := run(t, "chain", fixture, "1", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "no path found")
}

func TestChain_MissingNode(t *testing.T) {
	_, err := run(t, "chain", fixture, "1", "42")
	assert.Error(t, err)
	_, err = run(t, "chain", fixture, "one", "2")
	assert.Error(t, err)
}

func TestReport_TextWithMetrics(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "sg.prom")
	t.Setenv("SOCIALGRAPH_METRICS_TEXTFILE", prom)

	out, err := run(t, "report", fixture, "--top", "2", "-m", "closeness")
	require.NoError(t, err)
	assert.Contains(t, out, "closeness")
	assert.NotContains(t, out, "eigenvector")
	assert.Equal(t, 2, strings.Count(out, "1.0000"))

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "socialgraph_graph_nodes 5")
}

func TestReport_BadInput(t *testing.T) {
	_, err := run(t, "report", fixture, "-m", "pagerank")
	assert.Error(t, err)
	_, err = run(t, "report", filepath.Join("testdata", "absent.json"))
	assert.Error(t, err)
	_, err = run(t, "report", fixture, "--format", "xml")
	assert.Error(t, err)
	_, err = run(t, "report", fixture, "--timeout", "soon")
	assert.Error(t, err)
}

func TestGenerate_ThenEdges(t *testing.T) {
	out, err := run(t, "generate", "--topology", "cycle", "-n", "6")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cycle.json")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	out, err = run(t, "edges", path)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	_, err = run(t, "generate", "--topology", "lattice")
	assert.Error(t, err)
}

func TestMatrix(t *testing.T) {
	out, err := run(t, "matrix", fixture, "-f", "json")
	require.NoError(t, err)

	var got struct {
		Matrix struct {
			Order     []int64 `json:"order"`
			Rows      [][]int `json:"rows"`
			Symmetric bool    `json:"symmetric"`
		} `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got.Matrix.Order)
	assert.Equal(t, []int{1, 0, 1, 0, 0}, got.Matrix.Rows[1])
	assert.True(t, got.Matrix.Symmetric)
}

func TestHelp_TopHasNoSentinelDefault(t *testing.T) {
	out, err := run(t, "report", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--top")
	assert.NotContains(t, out, "(default -1)")
}
