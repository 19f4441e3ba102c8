// get.go — value and relational-metadata accessors.
//
// Per-kind getters return (value, ok) in map-lookup style. The heterogeneous
// Get reports failure explicitly because a caller holding a bare ID usually
// needs to distinguish "removed" from "never issued a valid kind".
// Relational metadata is returned as copies: the store stays the only writer.

package core

import "github.com/pkg/errors"

// Node returns the value of the node with the given identifier.
func (g *Hypergraph[N, E, H, L]) Node(id NodeID) (N, bool) {
	if rec, ok := g.nodes[id]; ok {
		return rec.val, true
	}
	var zero N
	return zero, false
}

// Edge returns the value of the edge with the given identifier.
func (g *Hypergraph[N, E, H, L]) Edge(id EdgeID) (E, bool) {
	if rec, ok := g.edges[id]; ok {
		return rec.val, true
	}
	var zero E
	return zero, false
}

// Link returns the value of the link with the given identifier.
func (g *Hypergraph[N, E, H, L]) Link(id LinkID) (L, bool) {
	if rec, ok := g.links[id]; ok {
		return rec.val, true
	}
	var zero L
	return zero, false
}

// GraphValue returns the value of the nested hypergraph with the given
// identifier.
func (g *Hypergraph[N, E, H, L]) GraphValue(id GraphID) (H, bool) {
	if rec, ok := g.graphs[id]; ok {
		return rec.sub.value, true
	}
	var zero H
	return zero, false
}

// SubGraph returns the nested hypergraph instance itself. The instance is
// wholly owned by g; mutating it through its own methods is the supported
// path for building nested content.
func (g *Hypergraph[N, E, H, L]) SubGraph(id GraphID) (*Hypergraph[N, E, H, L], bool) {
	if rec, ok := g.graphs[id]; ok {
		return rec.sub, true
	}
	return nil, false
}

// Get returns the value behind any identifier as an untyped interface.
// Prefer the per-kind getters when the kind is known at compile time.
//
// Returns ErrKindMismatch for the zero or malformed identifier and
// ErrUnknownIdentifier when id was removed or never issued.
func (g *Hypergraph[N, E, H, L]) Get(id ID) (any, error) {
	if !id.kind.valid() {
		return nil, errors.Wrapf(ErrKindMismatch, "get (%s)", id)
	}
	switch id.kind {
	case KindNode:
		if v, ok := g.Node(NodeID(id.num)); ok {
			return v, nil
		}
	case KindEdge:
		if v, ok := g.Edge(EdgeID(id.num)); ok {
			return v, nil
		}
	case KindLink:
		if v, ok := g.Link(LinkID(id.num)); ok {
			return v, nil
		}
	case KindGraph:
		if v, ok := g.GraphValue(GraphID(id.num)); ok {
			return v, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownIdentifier, "get (%s)", id)
}

// EdgeVertices returns a copy of the ordered vertex list of an edge.
func (g *Hypergraph[N, E, H, L]) EdgeVertices(id EdgeID) ([]ID, bool) {
	rec, ok := g.edges[id]
	if !ok {
		return nil, false
	}
	return append([]ID(nil), rec.verts...), true
}

// EdgeLinks returns the identifiers of the links attached to an edge, in
// attachment order.
func (g *Hypergraph[N, E, H, L]) EdgeLinks(id EdgeID) ([]LinkID, bool) {
	rec, ok := g.edges[id]
	if !ok {
		return nil, false
	}
	out := make([]LinkID, 0, len(rec.links))
	for _, ref := range rec.links {
		out = append(out, ref.id)
	}
	return out, true
}

// LinkEndpoints returns the source and target of a link.
func (g *Hypergraph[N, E, H, L]) LinkEndpoints(id LinkID) (source, target ID, ok bool) {
	rec, found := g.links[id]
	if !found {
		return ID{}, ID{}, false
	}
	return rec.src, rec.dst, true
}

// IncidentLinks returns the identifiers of all links touching the element,
// in attachment order, regardless of direction. Links themselves and unknown
// identifiers yield (nil, false).
func (g *Hypergraph[N, E, H, L]) IncidentLinks(id ID) ([]LinkID, bool) {
	refs := g.linksOf(id)
	if refs == nil {
		return nil, false
	}
	out := make([]LinkID, 0, len(*refs))
	for _, ref := range *refs {
		out = append(out, ref.id)
	}
	return out, true
}

// SetNode replaces the value of an existing node.
// Returns ErrUnknownIdentifier if the node does not resolve.
func (g *Hypergraph[N, E, H, L]) SetNode(id NodeID, value N) error {
	g.enter()
	defer g.leave()
	rec, ok := g.nodes[id]
	if !ok {
		return errors.Wrapf(ErrUnknownIdentifier, "set (%s)", id.ID())
	}
	rec.val = value
	return nil
}

// SetEdge replaces the value of an existing edge. Vertices are relational
// metadata and cannot be replaced; remove and reinsert instead.
func (g *Hypergraph[N, E, H, L]) SetEdge(id EdgeID, value E) error {
	g.enter()
	defer g.leave()
	rec, ok := g.edges[id]
	if !ok {
		return errors.Wrapf(ErrUnknownIdentifier, "set (%s)", id.ID())
	}
	rec.val = value
	return nil
}

// SetLink replaces the value of an existing link.
func (g *Hypergraph[N, E, H, L]) SetLink(id LinkID, value L) error {
	g.enter()
	defer g.leave()
	rec, ok := g.links[id]
	if !ok {
		return errors.Wrapf(ErrUnknownIdentifier, "set (%s)", id.ID())
	}
	rec.val = value
	return nil
}

// SetGraphValue replaces the value of an existing nested hypergraph.
func (g *Hypergraph[N, E, H, L]) SetGraphValue(id GraphID, value H) error {
	g.enter()
	defer g.leave()
	rec, ok := g.graphs[id]
	if !ok {
		return errors.Wrapf(ErrUnknownIdentifier, "set (%s)", id.ID())
	}
	rec.sub.value = value
	return nil
}
