package walk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/hygraph/core"
	"github.com/katalvlaran/hygraph/walk"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// chain builds n0 →l→ n1 →l→ n2 →l→ n3 and returns the graph and node ids.
func chain(t *testing.T, n int) (*core.Hypergraph[string, string, string, string], []core.ID) {
	t.Helper()
	g := core.New[string, string, string, string]()
	ids := make([]core.ID, n)
	for i := range ids {
		ids[i] = g.InsertNode("n").ID()
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.InsertLink("next", ids[i], ids[i+1])
		require.NoError(t, err)
	}
	return g, ids
}

// TestBFSChain verifies order, depth, parents, and PathTo on a simple chain.
func TestBFSChain(t *testing.T) {
	g, ids := chain(t, 4)

	res, err := walk.BFS(g, ids[0])
	require.NoError(t, err)
	require.Equal(t, ids, res.Order)
	for i, id := range ids {
		require.Equal(t, i, res.Depth[id])
	}
	require.Equal(t, ids[1], res.Parent[ids[2]])
	_, ok := res.Parent[ids[0]]
	require.False(t, ok, "root has no parent")

	path, err := res.PathTo(ids[3])
	require.NoError(t, err)
	require.Equal(t, ids, path)

	_, err = res.PathTo(core.NodeID(999).ID())
	require.Error(t, err)
}

// TestBFSDirections verifies Forward, Reverse, and Both traversal modes.
func TestBFSDirections(t *testing.T) {
	g, ids := chain(t, 3)

	res, err := walk.BFS(g, ids[2])
	require.NoError(t, err)
	require.Equal(t, []core.ID{ids[2]}, res.Order, "no outgoing links from the tail")

	res, err = walk.BFS(g, ids[2], walk.WithTraverse(walk.Reverse))
	require.NoError(t, err)
	require.Equal(t, []core.ID{ids[2], ids[1], ids[0]}, res.Order)

	res, err = walk.BFS(g, ids[1], walk.WithTraverse(walk.Both))
	require.NoError(t, err)
	require.Len(t, res.Order, 3)
	require.Equal(t, 1, res.Depth[ids[0]])
	require.Equal(t, 1, res.Depth[ids[2]])
}

// TestBFSHeterogeneous verifies that the walk crosses element kinds: links may
// point at edges and nested graphs, and all of them are visitable.
func TestBFSHeterogeneous(t *testing.T) {
	g := core.New[string, string, string, string]()
	n1 := g.InsertNode("a").ID()
	n2 := g.InsertNode("b").ID()
	e, err := g.InsertEdge("pair", n1, n2)
	require.NoError(t, err)
	h := g.InsertGraph("inner").ID()
	_, err = g.InsertLink("to-edge", n1, e.ID())
	require.NoError(t, err)
	_, err = g.InsertLink("to-graph", e.ID(), h)
	require.NoError(t, err)

	res, err := walk.BFS(g, n1)
	require.NoError(t, err)
	require.Equal(t, []core.ID{n1, e.ID(), h}, res.Order)
	require.Equal(t, 2, res.Depth[h])
}

// TestBFSMaxDepthAndFilter verifies depth limiting and neighbor filtering.
func TestBFSMaxDepthAndFilter(t *testing.T) {
	g, ids := chain(t, 5)

	res, err := walk.BFS(g, ids[0], walk.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, ids[:3], res.Order)

	res, err = walk.BFS(g, ids[0], walk.WithFilterNeighbor(
		func(_, neighbor core.ID) bool { return neighbor != ids[2] },
	))
	require.NoError(t, err)
	require.Equal(t, ids[:2], res.Order, "filtered hop cuts the chain")
}

// TestBFSHooks verifies hook ordering and error propagation from OnVisit.
func TestBFSHooks(t *testing.T) {
	g, ids := chain(t, 3)

	var enq []core.ID
	res, err := walk.BFS(g, ids[0],
		walk.WithOnEnqueue(func(id core.ID, _ int) { enq = append(enq, id) }),
	)
	require.NoError(t, err)
	require.Equal(t, res.Order, enq, "chain enqueue order equals visit order")

	boom := context.DeadlineExceeded
	_, err = walk.BFS(g, ids[0], walk.WithOnVisit(func(id core.ID, _ int) error {
		if id == ids[1] {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

// TestBFSCancellation verifies that an already-cancelled context aborts.
func TestBFSCancellation(t *testing.T) {
	g, ids := chain(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := walk.BFS(g, ids[0], walk.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFSInputValidation verifies the sentinel failures.
func TestBFSInputValidation(t *testing.T) {
	g, ids := chain(t, 2)

	_, err := walk.BFS[string, string, string, string](nil, ids[0])
	require.ErrorIs(t, err, walk.ErrGraphNil)

	_, err = walk.BFS(g, core.NodeID(404).ID())
	require.ErrorIs(t, err, walk.ErrStartNotFound)

	l, ok := g.FindLink(func(core.LinkID, string) bool { return true })
	require.True(t, ok)
	_, err = walk.BFS(g, l.ID())
	require.ErrorIs(t, err, walk.ErrStartKind)

	_, err = walk.BFS(g, ids[0], walk.WithMaxDepth(-1))
	require.ErrorIs(t, err, walk.ErrOptionViolation)

	_, err = walk.BFS(g, ids[0], walk.WithTraverse(walk.Traverse(99)))
	require.ErrorIs(t, err, walk.ErrOptionViolation)
}
