package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hygraph/core"
)

// newGraph builds the string-valued hypergraph used across these tests.
func newGraph(opts ...core.Option) *core.Hypergraph[string, string, string, string] {
	return core.New[string, string, string, string](opts...)
}

// TestInsertNode verifies node insertion, lookup, and identifier tagging.
func TestInsertNode(t *testing.T) {
	g := newGraph()

	n1 := g.InsertNode("alpha")
	n2 := g.InsertNode("beta")
	require.NotEqual(t, n1, n2)
	require.Equal(t, core.KindNode, n1.ID().Kind())

	v, ok := g.Node(n1)
	require.True(t, ok)
	require.Equal(t, "alpha", v)
	require.True(t, g.Contains(n2.ID()))
	require.Equal(t, 2, g.NodeCount())
}

// TestInsertEdge verifies hyperedge insertion over heterogeneous vertices
// and its validation failures.
func TestInsertEdge(t *testing.T) {
	g := newGraph()
	n1 := g.InsertNode("a")
	n2 := g.InsertNode("b")
	h1 := g.InsertGraph("inner")

	// A 3-vertex hyperedge over two nodes and a nested graph.
	e1, err := g.InsertEdge("tri", n1.ID(), n2.ID(), h1.ID())
	require.NoError(t, err)
	verts, ok := g.EdgeVertices(e1)
	require.True(t, ok)
	require.Equal(t, []core.ID{n1.ID(), n2.ID(), h1.ID()}, verts)

	// Edges may themselves be vertices.
	e2, err := g.InsertEdge("meta", e1.ID(), n1.ID())
	require.NoError(t, err)
	require.True(t, g.Contains(e2.ID()))

	// Fewer than two vertices is rejected before any commit.
	before := g.Stats()
	_, err = g.InsertEdge("short", n1.ID())
	require.ErrorIs(t, err, core.ErrInsufficientVertices)
	require.Equal(t, before, g.Stats())

	// Unresolved vertices are rejected.
	ghost := core.NodeID(9999)
	_, err = g.InsertEdge("ghost", n1.ID(), ghost.ID())
	require.ErrorIs(t, err, core.ErrDanglingEndpoint)

	// Links cannot be vertices.
	l1, err := g.InsertLink("rel", n1.ID(), n2.ID())
	require.NoError(t, err)
	_, err = g.InsertEdge("bad", n1.ID(), l1.ID())
	require.ErrorIs(t, err, core.ErrKindMismatch)
}

// TestInsertLink verifies link insertion between heterogeneous endpoints and
// its validation failures.
func TestInsertLink(t *testing.T) {
	g := newGraph()
	n1 := g.InsertNode("a")
	n2 := g.InsertNode("b")
	e1, err := g.InsertEdge("pair", n1.ID(), n2.ID())
	require.NoError(t, err)

	// Node to edge.
	l1, err := g.InsertLink("touch", n1.ID(), e1.ID())
	require.NoError(t, err)
	src, dst, ok := g.LinkEndpoints(l1)
	require.True(t, ok)
	require.Equal(t, n1.ID(), src)
	require.Equal(t, e1.ID(), dst)

	// Dangling endpoints are rejected.
	_, err = g.InsertLink("no", core.NodeID(777).ID(), n2.ID())
	require.ErrorIs(t, err, core.ErrDanglingEndpoint)
	_, err = g.InsertLink("no", n2.ID(), core.GraphID(777).ID())
	require.ErrorIs(t, err, core.ErrDanglingEndpoint)

	// Links cannot end at links.
	_, err = g.InsertLink("no", l1.ID(), n1.ID())
	require.ErrorIs(t, err, core.ErrKindMismatch)

	// The edge records the attached link.
	lids, ok := g.EdgeLinks(e1)
	require.True(t, ok)
	require.Equal(t, []core.LinkID{l1}, lids)
}

// TestIdentifierMonotonic verifies strictly increasing identifier numbers
// across kinds and no reuse after removal.
func TestIdentifierMonotonic(t *testing.T) {
	g := newGraph()

	issued := make(map[uint64]struct{})
	last := uint64(0)
	record := func(id core.ID) {
		require.Greater(t, id.Num(), last, "identifier numbers must strictly increase")
		_, seen := issued[id.Num()]
		require.False(t, seen, "identifier number reused")
		issued[id.Num()] = struct{}{}
		last = id.Num()
	}

	for i := 0; i < 50; i++ {
		n := g.InsertNode("n")
		record(n.ID())
		g.Remove(n.ID())
	}
	n1 := g.InsertNode("a")
	record(n1.ID())
	n2 := g.InsertNode("b")
	record(n2.ID())
	e, err := g.InsertEdge("e", n1.ID(), n2.ID())
	require.NoError(t, err)
	record(e.ID())
	h := g.InsertGraph("h")
	record(h.ID())
}

// TestGetAndSet verifies the heterogeneous Get and the per-kind setters.
func TestGetAndSet(t *testing.T) {
	g := newGraph()
	n := g.InsertNode("old")

	v, err := g.Get(n.ID())
	require.NoError(t, err)
	require.Equal(t, "old", v)

	require.NoError(t, g.SetNode(n, "new"))
	v, err = g.Get(n.ID())
	require.NoError(t, err)
	require.Equal(t, "new", v)

	// Unknown and malformed identifiers report distinct failures.
	_, err = g.Get(core.NodeID(404).ID())
	require.ErrorIs(t, err, core.ErrUnknownIdentifier)
	_, err = g.Get(core.ID{})
	require.ErrorIs(t, err, core.ErrKindMismatch)
	require.ErrorIs(t, g.SetNode(core.NodeID(404), "x"), core.ErrUnknownIdentifier)

	// Nested graph values are set through the parent.
	h := g.InsertGraph("inner")
	require.NoError(t, g.SetGraphValue(h, "renamed"))
	hv, ok := g.GraphValue(h)
	require.True(t, ok)
	require.Equal(t, "renamed", hv)
}

// TestNestedOwnership verifies that nested instances are independent scopes
// reachable only through the parent.
func TestNestedOwnership(t *testing.T) {
	g := newGraph()
	h := g.InsertGraph("inner")

	sub, ok := g.SubGraph(h)
	require.True(t, ok)
	inner := sub.InsertNode("nested")

	// The nested node lives in the nested scope only.
	require.True(t, sub.Contains(inner.ID()))
	require.False(t, g.Contains(inner.ID()))
	require.Equal(t, "inner", sub.Value())
}
