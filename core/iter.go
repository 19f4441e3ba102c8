// iter.go — the traversal layer: lazy, restartable identifier iterators.
//
// Iterators hold a reference to the live store and take no locks. An
// identifier removed mid-walk is skipped, never an error; an identifier
// inserted mid-walk becomes visible to iterators that have not passed its
// position yet. Reset rewinds to the beginning. Order slices are append-only
// between Clear calls (see store.go), so positions stay meaningful for the
// iterator's whole life.

package core

import "github.com/pkg/errors"

// IDIter iterates the identifiers of one element kind in insertion order.
// Create with IDs; restart with Reset.
type IDIter[N, E, H, L any] struct {
	g    *Hypergraph[N, E, H, L]
	kind Kind
	pos  int
}

// IDs returns an iterator over the identifiers of the given kind, in
// insertion order. An invalid kind yields an empty iterator.
func (g *Hypergraph[N, E, H, L]) IDs(kind Kind) *IDIter[N, E, H, L] {
	return &IDIter[N, E, H, L]{g: g, kind: kind}
}

// Next returns the next live identifier, or (zero, false) when exhausted.
func (it *IDIter[N, E, H, L]) Next() (ID, bool) {
	switch it.kind {
	case KindNode:
		for it.pos < len(it.g.nodeOrder) {
			id := it.g.nodeOrder[it.pos]
			it.pos++
			if _, ok := it.g.nodes[id]; ok {
				return id.ID(), true
			}
		}
	case KindEdge:
		for it.pos < len(it.g.edgeOrder) {
			id := it.g.edgeOrder[it.pos]
			it.pos++
			if _, ok := it.g.edges[id]; ok {
				return id.ID(), true
			}
		}
	case KindLink:
		for it.pos < len(it.g.linkOrder) {
			id := it.g.linkOrder[it.pos]
			it.pos++
			if _, ok := it.g.links[id]; ok {
				return id.ID(), true
			}
		}
	case KindGraph:
		for it.pos < len(it.g.graphOrder) {
			id := it.g.graphOrder[it.pos]
			it.pos++
			if _, ok := it.g.graphs[id]; ok {
				return id.ID(), true
			}
		}
	}
	return ID{}, false
}

// Reset rewinds the iterator to the first identifier.
func (it *IDIter[N, E, H, L]) Reset() { it.pos = 0 }

// Collect drains the remaining identifiers into a slice.
func (it *IDIter[N, E, H, L]) Collect() []ID {
	var out []ID
	for {
		id, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, id)
	}
}

// NeighborIter iterates the identifiers one link-hop away from a source
// element, following links of one direction in attachment order. The walk
// reads live store state: links or neighbors removed mid-walk are skipped,
// and links attached after creation are seen once the walk reaches them.
type NeighborIter[N, E, H, L any] struct {
	g   *Hypergraph[N, E, H, L]
	src ID
	dir Direction
	pos int
}

// Neighbors returns an iterator over the elements reachable from id by one
// link in the given direction (Outgoing follows links where id is the
// source; Incoming follows links where it is the target).
//
// Returns ErrKindMismatch if id is a link and ErrUnknownIdentifier if id
// does not resolve at creation time. A source removed later simply exhausts
// the iterator.
func (g *Hypergraph[N, E, H, L]) Neighbors(id ID, dir Direction) (*NeighborIter[N, E, H, L], error) {
	if id.kind == KindLink || !id.kind.valid() {
		return nil, errors.Wrapf(ErrKindMismatch, "neighbors (%s)", id)
	}
	if !g.Contains(id) {
		return nil, errors.Wrapf(ErrUnknownIdentifier, "neighbors (%s)", id)
	}
	return &NeighborIter[N, E, H, L]{g: g, src: id, dir: dir}, nil
}

// Next returns the identifier at the other end of the next matching link.
// A self-link reports the source itself.
func (it *NeighborIter[N, E, H, L]) Next() (ID, bool) {
	refs := it.g.linksOf(it.src)
	if refs == nil {
		return ID{}, false // source removed mid-walk
	}
	for it.pos < len(*refs) {
		ref := (*refs)[it.pos]
		it.pos++
		if ref.dir != it.dir {
			continue
		}
		rec, ok := it.g.links[ref.id]
		if !ok {
			continue
		}
		other := rec.dst
		if it.dir == Incoming {
			other = rec.src
		}
		if !it.g.Contains(other) {
			continue
		}
		return other, true
	}
	return ID{}, false
}

// Reset rewinds the walk to the first incident link.
func (it *NeighborIter[N, E, H, L]) Reset() { it.pos = 0 }

// Collect drains the remaining neighbors into a slice. Repeated links to the
// same neighbor repeat in the result.
func (it *NeighborIter[N, E, H, L]) Collect() []ID {
	var out []ID
	for {
		id, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, id)
	}
}

// ExternalIter iterates the linkable elements with no incident links:
// isolated nodes, edges nothing points at, and unconnected nested graphs.
// Kinds are visited node, edge, graph, each in insertion order.
type ExternalIter[N, E, H, L any] struct {
	g    *Hypergraph[N, E, H, L]
	kind Kind
	pos  int
}

// Externals returns an iterator over elements without incident links,
// useful for isolated-element and root detection.
func (g *Hypergraph[N, E, H, L]) Externals() *ExternalIter[N, E, H, L] {
	return &ExternalIter[N, E, H, L]{g: g, kind: KindNode}
}

// Next returns the next element with no incident links.
func (it *ExternalIter[N, E, H, L]) Next() (ID, bool) {
	for {
		switch it.kind {
		case KindNode:
			for it.pos < len(it.g.nodeOrder) {
				id := it.g.nodeOrder[it.pos]
				it.pos++
				if rec, ok := it.g.nodes[id]; ok && len(rec.links) == 0 {
					return id.ID(), true
				}
			}
			it.kind, it.pos = KindEdge, 0
		case KindEdge:
			for it.pos < len(it.g.edgeOrder) {
				id := it.g.edgeOrder[it.pos]
				it.pos++
				if rec, ok := it.g.edges[id]; ok && len(rec.links) == 0 {
					return id.ID(), true
				}
			}
			it.kind, it.pos = KindGraph, 0
		case KindGraph:
			for it.pos < len(it.g.graphOrder) {
				id := it.g.graphOrder[it.pos]
				it.pos++
				if rec, ok := it.g.graphs[id]; ok && len(rec.links) == 0 {
					return id.ID(), true
				}
			}
			return ID{}, false
		default:
			return ID{}, false
		}
	}
}

// Reset rewinds the iterator to the first node position.
func (it *ExternalIter[N, E, H, L]) Reset() {
	it.kind, it.pos = KindNode, 0
}

// Collect drains the remaining external identifiers into a slice.
func (it *ExternalIter[N, E, H, L]) Collect() []ID {
	var out []ID
	for {
		id, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, id)
	}
}
