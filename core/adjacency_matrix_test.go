package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
)

func TestAdjacencyMatrix_Path(t *testing.T) {
	am := pathGraph(t).AdjacencyMatrix()
	require.Equal(t, 3, am.Size())
	assert.Equal(t, []core.NodeID{1, 2, 3}, am.Order)
	assert.Equal(t, [][]uint8{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, am.Cells)
	assert.True(t, am.Symmetric())
}

func TestAdjacencyMatrix_Asymmetric(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddNode(2)
	g.AddEdge(2, 7) // dangling: no column

	am := g.AdjacencyMatrix()
	i, err := am.IndexOf(1)
	require.NoError(t, err)
	j, err := am.IndexOf(2)
	require.NoError(t, err)

	v, err := am.At(i, j)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)
	v, err = am.At(j, i)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
	assert.False(t, am.Symmetric())

	_, err = am.IndexOf(7)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = am.At(0, 5)
	assert.Error(t, err)
}
