package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-physdesign/physdesign/core"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdgeUndirectedMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	aNeighbors, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, aNeighbors)

	bNeighbors, err := g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, bNeighbors)
}

func TestAddEdgeDirectedIsOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("parent", "child", 1)
	require.NoError(t, err)

	parentNeighbors, err := g.NeighborIDs("parent")
	require.NoError(t, err)
	assert.Equal(t, []string{"child"}, parentNeighbors)

	childNeighbors, err := g.NeighborIDs("child")
	require.NoError(t, err)
	assert.Empty(t, childNeighbors)
}

func TestAddEdgeRejectsDuplicateWithoutMultiEdges(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	_, err = g.AddEdge("a", "b", 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdgeAllowsParallelEdgesWithMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())

	id1, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	id2, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	edges, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}
