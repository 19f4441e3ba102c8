package export_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hygraph/core"
	"github.com/katalvlaran/hygraph/export"
)

// fixture builds a two-level hypergraph exercising every visit callback.
func fixture(t *testing.T) *core.Hypergraph[string, string, string, string] {
	t.Helper()
	g := core.New[string, string, string, string]()
	n1 := g.InsertNode("a")
	n2 := g.InsertNode("b")
	e, err := g.InsertEdge("pair", n1.ID(), n2.ID())
	require.NoError(t, err)
	_, err = g.InsertLink("rel", n1.ID(), e.ID())
	require.NoError(t, err)
	h := g.InsertGraph("inner")
	sub, _ := g.SubGraph(h)
	sub.InsertNode("deep")
	return g
}

// tracer records the callback sequence as compact strings.
type tracer struct {
	events []string
	fail   string // event name that should return an error
}

var errStop = errors.New("stop")

func (tr *tracer) record(ev string) error {
	tr.events = append(tr.events, ev)
	if ev == tr.fail {
		return errStop
	}
	return nil
}

func (tr *tracer) VisitNode(id core.NodeID, v string) error {
	return tr.record("node:" + v)
}

func (tr *tracer) VisitEdge(id core.EdgeID, v string, verts []core.ID) error {
	return tr.record("edge:" + v)
}

func (tr *tracer) VisitLink(id core.LinkID, v string, src, dst core.ID) error {
	return tr.record("link:" + v)
}

func (tr *tracer) EnterGraph(id core.GraphID, v string) error {
	return tr.record("enter:" + v)
}

func (tr *tracer) LeaveGraph(id core.GraphID) error {
	return tr.record("leave")
}

// TestWalkOrder verifies the kind order, insertion order, and nesting
// brackets of the visitor contract.
func TestWalkOrder(t *testing.T) {
	g := fixture(t)

	tr := &tracer{}
	require.NoError(t, export.Walk(g, tr))
	require.Equal(t, []string{
		"node:a", "node:b",
		"edge:pair",
		"link:rel",
		"enter:inner", "node:deep", "leave",
	}, tr.events)
}

// TestWalkAborts verifies error propagation from each callback stage.
func TestWalkAborts(t *testing.T) {
	g := fixture(t)

	tr := &tracer{fail: "edge:pair"}
	err := export.Walk(g, tr)
	require.ErrorIs(t, err, errStop)
	require.Equal(t, []string{"node:a", "node:b", "edge:pair"}, tr.events)

	tr = &tracer{fail: "enter:inner"}
	err = export.Walk(g, tr)
	require.ErrorIs(t, err, errStop)
	require.NotContains(t, tr.events, "node:deep", "aborted scope must not be entered")
}

// TestWalkValidation verifies the sentinel failures.
func TestWalkValidation(t *testing.T) {
	g := fixture(t)

	err := export.Walk[string, string, string, string](nil, &tracer{})
	require.ErrorIs(t, err, export.ErrGraphNil)

	err = export.Walk[string, string, string, string](g, nil)
	require.ErrorIs(t, err, export.ErrVisitorNil)
}

// TestCapture verifies the detached snapshot: content, nesting, and
// independence from later mutation.
func TestCapture(t *testing.T) {
	g := fixture(t)

	snap, err := export.Capture(g)
	require.NoError(t, err)
	require.Len(t, snap.Nodes, 2)
	require.Equal(t, "a", snap.Nodes[0].Value)
	require.Len(t, snap.Edges, 1)
	require.Len(t, snap.Edges[0].Vertices, 2)
	require.Len(t, snap.Links, 1)
	require.Equal(t, snap.Edges[0].ID.ID(), snap.Links[0].Target)
	require.Len(t, snap.Graphs, 1)
	require.Equal(t, "inner", snap.Graphs[0].Sub.Value)
	require.Len(t, snap.Graphs[0].Sub.Nodes, 1)

	// Clearing the source leaves the snapshot intact.
	g.Clear()
	require.Len(t, snap.Nodes, 2)

	_, err = export.Capture[string, string, string, string](nil)
	require.ErrorIs(t, err, export.ErrGraphNil)
}
