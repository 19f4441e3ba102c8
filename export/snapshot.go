// snapshot.go — a Snapshot collector implemented on the Visitor contract.
//
// Snapshots hold plain values and identifier references only, so they can be
// handed to any encoder without dragging the live store along.

package export

import "github.com/katalvlaran/hygraph/core"

// NodeSnap is the captured form of one node.
type NodeSnap[N any] struct {
	ID    core.NodeID
	Value N
}

// EdgeSnap is the captured form of one hyperedge.
type EdgeSnap[E any] struct {
	ID       core.EdgeID
	Value    E
	Vertices []core.ID
}

// LinkSnap is the captured form of one link.
type LinkSnap[L any] struct {
	ID     core.LinkID
	Value  L
	Source core.ID
	Target core.ID
}

// GraphSnap is the captured form of one nested hypergraph.
type GraphSnap[N, E, H, L any] struct {
	ID  core.GraphID
	Sub *Snapshot[N, E, H, L]
}

// Snapshot is a point-in-time, detached copy of one hypergraph level.
// Element order matches insertion order at capture time.
type Snapshot[N, E, H, L any] struct {
	Value  H
	Nodes  []NodeSnap[N]
	Edges  []EdgeSnap[E]
	Links  []LinkSnap[L]
	Graphs []GraphSnap[N, E, H, L]
}

// collector assembles Snapshots level by level while Walk recurses. The
// stack top is the level currently being filled.
type collector[N, E, H, L any] struct {
	stack []*Snapshot[N, E, H, L]
}

// Capture walks g and returns its detached Snapshot.
// Complexity: O(total elements + references).
func Capture[N, E, H, L any](g *core.Hypergraph[N, E, H, L]) (*Snapshot[N, E, H, L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	root := &Snapshot[N, E, H, L]{Value: g.Value()}
	c := &collector[N, E, H, L]{stack: []*Snapshot[N, E, H, L]{root}}
	if err := Walk(g, c); err != nil {
		return nil, err
	}
	return root, nil
}

func (c *collector[N, E, H, L]) top() *Snapshot[N, E, H, L] {
	return c.stack[len(c.stack)-1]
}

func (c *collector[N, E, H, L]) VisitNode(id core.NodeID, value N) error {
	t := c.top()
	t.Nodes = append(t.Nodes, NodeSnap[N]{ID: id, Value: value})
	return nil
}

func (c *collector[N, E, H, L]) VisitEdge(id core.EdgeID, value E, vertices []core.ID) error {
	t := c.top()
	t.Edges = append(t.Edges, EdgeSnap[E]{ID: id, Value: value, Vertices: vertices})
	return nil
}

func (c *collector[N, E, H, L]) VisitLink(id core.LinkID, value L, src, dst core.ID) error {
	t := c.top()
	t.Links = append(t.Links, LinkSnap[L]{ID: id, Value: value, Source: src, Target: dst})
	return nil
}

func (c *collector[N, E, H, L]) EnterGraph(id core.GraphID, value H) error {
	sub := &Snapshot[N, E, H, L]{Value: value}
	t := c.top()
	t.Graphs = append(t.Graphs, GraphSnap[N, E, H, L]{ID: id, Sub: sub})
	c.stack = append(c.stack, sub)
	return nil
}

func (c *collector[N, E, H, L]) LeaveGraph(core.GraphID) error {
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}
