package centrality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/paths"
)

const eps = 1e-9

func mustGraph(t *testing.T, adj map[core.NodeID][]core.NodeID) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)

	return g
}

func chain3(t *testing.T) *core.Graph {
	t.Helper()
	return mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1, 3}, 3: {2}})
}

func TestNilGraph(t *testing.T) {
	_, err := centrality.Betweenness(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Eigenvector(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Closeness(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
}

func TestOptionViolations(t *testing.T) {
	g := chain3(t)
	for _, opt := range []centrality.Option{
		centrality.WithIterations(0),
		centrality.WithTolerance(-1),
		centrality.WithMaxPaths(-2),
	} {
		_, err := centrality.Eigenvector(g, opt)
		assert.ErrorIs(t, err, centrality.ErrOptionViolation)
	}
}

func TestBetweenness_Path(t *testing.T) {
	scores, err := centrality.Betweenness(chain3(t))
	require.NoError(t, err)
	// Node 2 is inside 1→3 and 3→1.
	assert.Equal(t, centrality.Scores{1: 0, 2: 2, 3: 0}, scores)
}

func TestBetweenness_AllSimplePathsNotShortest(t *testing.T) {
	// Square 1-2-3-4-1: each node lies inside the long routes as well.
	g := mustGraph(t, map[core.NodeID][]core.NodeID{
		1: {2, 4}, 2: {1, 3}, 3: {2, 4}, 4: {3, 1},
	})
	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)
	// Per ordered pair the cycle offers two routes. Adjacent pairs (8 ordered)
	// contribute a 3-hop route with 2 intermediates; opposite pairs (4 ordered)
	// contribute two 2-hop routes with 1 intermediate each. 8·2 + 4·2 = 24
	// credits spread evenly over 4 nodes.
	for id, v := range scores {
		assert.InDelta(t, 6.0, v, eps, "node %d", id)
	}
}

func TestBetweenness_EndpointsNeverCredited(t *testing.T) {
	g := chain3(t)
	var pairs int
	scores, err := centrality.Betweenness(g, centrality.WithOnPaths(func(s, t core.NodeID, n int) {
		pairs++
	}))
	require.NoError(t, err)
	assert.Equal(t, 6, pairs)
	assert.Zero(t, scores[1])
	assert.Zero(t, scores[3])
}

func TestBetweenness_PathCap(t *testing.T) {
	g := mustGraph(t, map[core.NodeID][]core.NodeID{
		1: {2, 4}, 2: {1, 3}, 3: {2, 4}, 4: {3, 1},
	})
	_, err := centrality.Betweenness(g, centrality.WithMaxPaths(1))
	assert.ErrorIs(t, err, paths.ErrPathLimit)
}

func TestEigenvector_ReciprocalPair(t *testing.T) {
	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1}})
	scores, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, scores[1], eps)
	assert.InDelta(t, 0.5, scores[2], eps)
}

func TestEigenvector_SumsToOne(t *testing.T) {
	g := mustGraph(t, map[core.NodeID][]core.NodeID{
		1: {2, 3}, 2: {1}, 3: {1, 4}, 4: {3}, 5: {},
	})
	for _, n := range []int{1, 2, 7, 100} {
		scores, err := centrality.Eigenvector(g, centrality.WithIterations(n))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, scores.Sum(), 1e-9, "iterations=%d", n)
		assert.Zero(t, scores[5])
	}
}

func TestEigenvector_ZeroSum(t *testing.T) {
	// Only edge points at a dangling id, so every next score is 0.
	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {9}, 2: {}})
	scores, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	assert.Equal(t, centrality.Scores{1: 0, 2: 0}, scores)
}

func TestEigenvector_Tolerance(t *testing.T) {
	g := chain3(t)
	fixed, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	early, err := centrality.Eigenvector(g, centrality.WithTolerance(1e-3))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, early.Sum(), eps)
	for id := range fixed {
		assert.GreaterOrEqual(t, early[id], 0.0)
	}
}

func TestEigenvector_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := centrality.Eigenvector(chain3(t), centrality.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCloseness_Path(t *testing.T) {
	scores, err := centrality.Closeness(chain3(t))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[2], eps)
	assert.InDelta(t, 2.0/3.0, scores[1], eps)
	assert.InDelta(t, 2.0/3.0, scores[3], eps)
}

func TestCloseness_Isolated(t *testing.T) {
	g := mustGraph(t, map[core.NodeID][]core.NodeID{1: {2}, 2: {1}, 3: {}})
	scores, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores[3])
	assert.InDelta(t, 1.0, scores[1], eps)
}

func TestScores_Ranked(t *testing.T) {
	s := centrality.Scores{3: 0.5, 1: 0.5, 2: 0.9}
	got := s.Ranked()
	assert.Equal(t, []centrality.Ranked{
		{Node: 2, Score: 0.9, Rank: 1},
		{Node: 1, Score: 0.5, Rank: 2},
		{Node: 3, Score: 0.5, Rank: 3},
	}, got)
}

// TestStar checks the hub under each measure.
func TestStar(t *testing.T) {
	g, err := builder.Build(builder.Star(5))
	require.NoError(t, err)

	bt, err := centrality.Betweenness(g)
	require.NoError(t, err)
	// 4 leaves → 12 ordered leaf pairs, each with one path through the hub.
	assert.InDelta(t, 12.0, bt[0], eps)

	cl, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cl[0], eps)
	assert.InDelta(t, 4.0/7.0, cl[1], eps)

	// A star is bipartite, so the fixed-budget iteration oscillates between
	// hub-heavy and uniform vectors; an even budget lands on uniform.
	ev, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	for id := range ev {
		assert.InDelta(t, 0.2, ev[id], eps, "node %d", id)
	}
	ev, err = centrality.Eigenvector(g, centrality.WithIterations(99))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ev[0], eps)
}
