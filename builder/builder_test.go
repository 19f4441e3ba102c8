package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hygraph/builder"
	"github.com/katalvlaran/hygraph/core"
	"github.com/katalvlaran/hygraph/walk"
)

// TestBuildChain verifies node and link counts, labels, and reachability.
func TestBuildChain(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Chain(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 3, g.LinkCount())

	head, ok := g.FindNode(func(_ core.NodeID, v string) bool { return v == "v0" })
	require.True(t, ok)
	res, err := walk.BFS(g, head.ID())
	require.NoError(t, err)
	require.Len(t, res.Order, 4, "every chain node is reachable from the head")
}

// TestBuildStar verifies the hub-and-leaves shape.
func TestBuildStar(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Star(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 4, g.LinkCount())

	hub, ok := g.FindNode(func(_ core.NodeID, v string) bool { return v == "v0" })
	require.True(t, ok)
	out, err := g.Neighbors(hub.ID(), core.Outgoing)
	require.NoError(t, err)
	require.Len(t, out.Collect(), 4)
}

// TestBuildMesh verifies sliding-window hyperedges.
func TestBuildMesh(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Mesh(5, 3))
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount(), "windows 0..2, 1..3, 2..4")

	e, ok := g.FindEdge(func(_ core.EdgeID, v string) bool { return v == "e0" })
	require.True(t, ok)
	verts, ok := g.EdgeVertices(e)
	require.True(t, ok)
	require.Len(t, verts, 3)
}

// TestBuildTower verifies the nesting chain depth.
func TestBuildTower(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Tower(3))
	require.NoError(t, err)

	depth := 0
	for cur := g; ; depth++ {
		require.Equal(t, 1, cur.NodeCount())
		h, ok := cur.FindGraph(func(core.GraphID, string) bool { return true })
		if !ok {
			break
		}
		cur, ok = cur.SubGraph(h)
		require.True(t, ok)
	}
	require.Equal(t, 2, depth, "three levels means two nesting hops")
}

// TestBuildComposition verifies orchestration order and custom labels.
func TestBuildComposition(t *testing.T) {
	g, err := builder.Build(
		[]core.Option{core.WithMinEdgeLinks(0)},
		[]builder.Option{builder.WithNodeLabels(func(i int) string { return fmt.Sprintf("city-%d", i) })},
		builder.Chain(3),
		builder.Star(3),
	)
	require.NoError(t, err)
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 4, g.LinkCount())

	_, ok := g.FindNode(func(_ core.NodeID, v string) bool { return v == "city-2" })
	require.True(t, ok)
}

// TestBuildValidation verifies the sentinel failures.
func TestBuildValidation(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Chain(1))
	require.ErrorIs(t, err, builder.ErrTooFewElements)

	_, err = builder.Build(nil, nil, builder.Star(0))
	require.ErrorIs(t, err, builder.ErrTooFewElements)

	_, err = builder.Build(nil, nil, builder.Mesh(3, 4))
	require.ErrorIs(t, err, builder.ErrBadWidth)

	_, err = builder.Build(nil, nil, builder.Mesh(3, 1))
	require.ErrorIs(t, err, builder.ErrBadWidth)

	_, err = builder.Build(nil, nil, builder.Tower(0))
	require.ErrorIs(t, err, builder.ErrTooFewElements)

	_, err = builder.Build(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
