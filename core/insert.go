// insert.go — validated element insertion.
//
// Every insertion validates its references first and only then allocates an
// identifier and commits, so a failed call leaves the structure byte-for-byte
// unchanged and the counter unadvanced.

package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InsertNode stores value as a new node and returns its identifier.
// Nodes have no structural references, so insertion cannot fail.
// Complexity: O(1) amortized.
func (g *Hypergraph[N, E, H, L]) InsertNode(value N) NodeID {
	g.enter()
	defer g.leave()

	id := NodeID(g.allocate())
	g.putNode(id, &nodeRec[N]{val: value, memberOf: make(map[EdgeID]struct{})})
	InsertTotal.WithLabelValues(KindNode.String(), statusSuccess).Inc()
	return id
}

// InsertEdge stores value as a new hyperedge over the given vertices and
// returns its identifier. Vertices may be nodes, other edges, or nested
// hypergraphs, in any mix, and may repeat.
//
// Returns ErrInsufficientVertices if fewer than two vertices are given,
// ErrKindMismatch if a vertex is a link, and ErrDanglingEndpoint if a vertex
// does not resolve.
// Complexity: O(len(vertices)).
func (g *Hypergraph[N, E, H, L]) InsertEdge(value E, vertices ...ID) (EdgeID, error) {
	g.enter()
	defer g.leave()

	// Validate before any commit.
	if len(vertices) < 2 {
		InsertTotal.WithLabelValues(KindEdge.String(), statusError).Inc()
		return 0, errors.Wrapf(ErrInsufficientVertices, "got %d", len(vertices))
	}
	for i, v := range vertices {
		if v.kind == KindLink {
			InsertTotal.WithLabelValues(KindEdge.String(), statusError).Inc()
			return 0, errors.Wrapf(ErrKindMismatch, "vertex %d is a link (%s)", i, v)
		}
		if !g.Contains(v) {
			InsertTotal.WithLabelValues(KindEdge.String(), statusError).Inc()
			return 0, errors.Wrapf(ErrDanglingEndpoint, "vertex %d (%s)", i, v)
		}
	}

	id := EdgeID(g.allocate())
	rec := &edgeRec[E]{
		val:      value,
		verts:    append([]ID(nil), vertices...),
		memberOf: make(map[EdgeID]struct{}),
	}
	g.putEdge(id, rec)
	for _, v := range vertices {
		g.memberOf(v)[id] = struct{}{}
	}
	InsertTotal.WithLabelValues(KindEdge.String(), statusSuccess).Inc()
	return id, nil
}

// InsertLink stores value as a new directed link from source to target and
// returns its identifier. Source and target may be nodes, edges, or nested
// hypergraphs; a link cannot be an endpoint of another link.
//
// Returns ErrKindMismatch if an endpoint is a link and ErrDanglingEndpoint
// if an endpoint does not resolve.
// Complexity: O(1) amortized.
func (g *Hypergraph[N, E, H, L]) InsertLink(value L, source, target ID) (LinkID, error) {
	g.enter()
	defer g.leave()

	if source.kind == KindLink || target.kind == KindLink {
		InsertTotal.WithLabelValues(KindLink.String(), statusError).Inc()
		return 0, errors.Wrapf(ErrKindMismatch, "link endpoints must not be links (%s -> %s)", source, target)
	}
	if !g.Contains(source) {
		InsertTotal.WithLabelValues(KindLink.String(), statusError).Inc()
		return 0, errors.Wrapf(ErrDanglingEndpoint, "source (%s)", source)
	}
	if !g.Contains(target) {
		InsertTotal.WithLabelValues(KindLink.String(), statusError).Inc()
		return 0, errors.Wrapf(ErrDanglingEndpoint, "target (%s)", target)
	}

	id := LinkID(g.allocate())
	g.putLink(id, &linkRec[L]{val: value, src: source, dst: target})
	// Attach to both endpoints. A self-link records two refs on one element.
	*g.linksOf(source) = append(*g.linksOf(source), linkRef{id: id, dir: Outgoing})
	*g.linksOf(target) = append(*g.linksOf(target), linkRef{id: id, dir: Incoming})
	InsertTotal.WithLabelValues(KindLink.String(), statusSuccess).Inc()
	return id, nil
}

// InsertGraph stores value as a new, empty nested hypergraph and returns its
// identifier. The nested instance is wholly owned by g and inherits its
// policy and logger; mutate it through SubGraph.
// Complexity: O(1) amortized.
func (g *Hypergraph[N, E, H, L]) InsertGraph(value H) GraphID {
	g.enter()
	defer g.leave()

	id := GraphID(g.allocate())
	sub := newLike[N, E, H, L](g)
	sub.value = value
	g.putGraph(id, &graphRec[N, E, H, L]{sub: sub, memberOf: make(map[EdgeID]struct{})})
	InsertTotal.WithLabelValues(KindGraph.String(), statusSuccess).Inc()
	g.log.Debug("nested hypergraph created",
		zap.String("instance", g.instance.String()),
		zap.Stringer("id", id.ID()),
	)
	return id
}
