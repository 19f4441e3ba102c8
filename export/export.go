// Package export walks a core.Hypergraph through a read-only Visitor,
// giving encoders and analyzers a single traversal contract: per-kind visit
// callbacks in insertion order, with Enter/Leave bracketing around every
// nested scope. A Snapshot collector built on the same contract captures a
// hypergraph as plain, encoder-friendly values.
package export

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/hygraph/core"
)

// Sentinel errors for export execution.
var (
	// ErrGraphNil is returned if a nil hypergraph pointer is passed.
	ErrGraphNil = errors.New("export: hypergraph is nil")

	// ErrVisitorNil is returned if a nil Visitor is passed.
	ErrVisitorNil = errors.New("export: visitor is nil")
)

// Visitor receives every element of a hypergraph level in insertion order:
// first nodes, then edges, then links, then nested hypergraphs. Each nested
// hypergraph is bracketed by EnterGraph and LeaveGraph with its whole content
// visited in between. Any returned error aborts the walk and is propagated.
//
// Visitors must not mutate the hypergraph being walked.
type Visitor[N, E, H, L any] interface {
	VisitNode(id core.NodeID, value N) error
	VisitEdge(id core.EdgeID, value E, vertices []core.ID) error
	VisitLink(id core.LinkID, value L, src, dst core.ID) error
	EnterGraph(id core.GraphID, value H) error
	LeaveGraph(id core.GraphID) error
}

// Walk feeds every element of g to v, recursing into nested hypergraphs.
// The root level itself gets no EnterGraph/LeaveGraph bracket.
// Complexity: O(total elements + references reported).
func Walk[N, E, H, L any](g *core.Hypergraph[N, E, H, L], v Visitor[N, E, H, L]) error {
	if g == nil {
		return ErrGraphNil
	}
	if v == nil {
		return ErrVisitorNil
	}
	return walkLevel(g, v)
}

func walkLevel[N, E, H, L any](g *core.Hypergraph[N, E, H, L], v Visitor[N, E, H, L]) error {
	it := g.IDs(core.KindNode)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		nid := core.NodeID(id.Num())
		val, found := g.Node(nid)
		if !found {
			continue
		}
		if err := v.VisitNode(nid, val); err != nil {
			return pkgerrors.Wrapf(err, "export: node %s", id)
		}
	}

	it = g.IDs(core.KindEdge)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		eid := core.EdgeID(id.Num())
		val, found := g.Edge(eid)
		if !found {
			continue
		}
		verts, _ := g.EdgeVertices(eid)
		if err := v.VisitEdge(eid, val, verts); err != nil {
			return pkgerrors.Wrapf(err, "export: edge %s", id)
		}
	}

	it = g.IDs(core.KindLink)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		lid := core.LinkID(id.Num())
		val, found := g.Link(lid)
		if !found {
			continue
		}
		src, dst, _ := g.LinkEndpoints(lid)
		if err := v.VisitLink(lid, val, src, dst); err != nil {
			return pkgerrors.Wrapf(err, "export: link %s", id)
		}
	}

	it = g.IDs(core.KindGraph)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		gid := core.GraphID(id.Num())
		sub, found := g.SubGraph(gid)
		if !found {
			continue
		}
		val, _ := g.GraphValue(gid)
		if err := v.EnterGraph(gid, val); err != nil {
			return pkgerrors.Wrapf(err, "export: enter %s", id)
		}
		if err := walkLevel(sub, v); err != nil {
			return err
		}
		if err := v.LeaveGraph(gid); err != nil {
			return pkgerrors.Wrapf(err, "export: leave %s", id)
		}
	}
	return nil
}
