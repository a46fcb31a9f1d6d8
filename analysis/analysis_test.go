package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/paths"
)

func mustGraph(t *testing.T, adj map[core.NodeID][]core.NodeID) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)

	return g
}

func TestReport_AllMeasures(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Top = 0
	a := analysis.New(&cfg, nil, nil)

	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1, 3}, 3: {2}})
	r, err := a.Report(context.Background(), g, "inline")
	require.NoError(t, err)

	_, err = uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 3, r.Nodes)
	assert.Equal(t, 2, r.UniqueConnections)
	require.Len(t, r.Betweenness, 3)
	assert.Equal(t, core.NodeID(2), r.Betweenness[0].Node)
	assert.InDelta(t, 2.0, r.Betweenness[0].Score, 1e-9)
	require.Len(t, r.Closeness, 3)
	assert.InDelta(t, 1.0, r.Closeness[0].Score, 1e-9)
	require.Len(t, r.Eigenvector, 3)

	rec := a.Metrics()
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.GraphNodes))
	// Pairs (1,3) and (3,1) each have one path through 2, the four adjacent pairs one direct path.
	assert.Equal(t, 6.0, testutil.ToFloat64(rec.SimplePaths))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues("ok")))
}

func TestReport_SelectedMeasureAndTop(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Top = 1
	a := analysis.New(&cfg, nil, nil)
	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1, 3}, 3: {2}})

	r, err := a.Report(context.Background(), g, "", analysis.Closeness)
	require.NoError(t, err)
	assert.Empty(t, r.Betweenness)
	assert.Empty(t, r.Eigenvector)
	assert.Len(t, r.Closeness, 1)
}

func TestReport_Timeout(t *testing.T) {
	cfg := config.Default()
	cfg.Run.Timeout = time.Nanosecond
	a := analysis.New(&cfg, nil, nil)

	// K8 has enough simple paths that a nanosecond deadline always fires first.
	g := core.NewGraph()
	for i := core.NodeID(0); i < 8; i++ {
		for j := core.NodeID(0); j < 8; j++ {
			if i != j {
				g.AddEdge(i, j)
			}
		}
	}
	_, err := a.Report(context.Background(), g, "", analysis.Betweenness)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics().Runs.WithLabelValues("error")))
}

func TestChain(t *testing.T) {
	a := analysis.New(nil, nil, nil)
	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1}, 3: {4}, 4: {3}})

	r, err := a.Chain(context.Background(), g, "", 1, 2)
	require.NoError(t, err)
	assert.True(t, r.Chain.Found)
	assert.Equal(t, []core.NodeID{1, 2}, r.Chain.Path)

	r, err = a.Chain(context.Background(), g, "", 1, 4)
	require.NoError(t, err)
	assert.False(t, r.Chain.Found)
	assert.Equal(t, -1, r.Chain.Hops())

	_, err = a.Chain(context.Background(), g, "", 1, 99)
	assert.ErrorIs(t, err, paths.ErrNodeNotFound)
}

func TestMatrix(t *testing.T) {
	a := analysis.New(nil, nil, nil)
	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1}, 3: {}})

	r, err := a.Matrix(g, "friends.json")
	require.NoError(t, err)
	require.NotNil(t, r.Matrix)
	assert.Equal(t, []core.NodeID{1, 2, 3}, r.Matrix.Order)
	assert.True(t, r.Matrix.Symmetric)
	assert.Equal(t, 1, r.UniqueConnections)

	_, err = a.Matrix(nil, "")
	assert.ErrorIs(t, err, core.ErrGraphNil)
}

func TestParseMeasure(t *testing.T) {
	m, err := analysis.ParseMeasure("eigenvector")
	require.NoError(t, err)
	assert.Equal(t, analysis.Eigenvector, m)
	_, err = analysis.ParseMeasure("pagerank")
	assert.ErrorIs(t, err, analysis.ErrUnknownMeasure)
}

func TestNilGraph(t *testing.T) {
	a := analysis.New(nil, nil, nil)
	_, err := a.Report(context.Background(), nil, "")
	assert.ErrorIs(t, err, core.ErrGraphNil)
	_, err = a.Chain(context.Background(), nil, "", 1, 2)
	assert.ErrorIs(t, err, core.ErrGraphNil)
}
