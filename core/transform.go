// transform.go — structure-preserving transforms.
//
// Map and Filter are top-level generic functions (methods cannot introduce
// type parameters). Both read a frozen view of the source and build a fresh
// instance: identifiers, vertex lists, link endpoints, and nesting carry
// over unchanged; the caller-supplied functions see (identifier, value)
// pairs and nothing else.

package core

import "github.com/pkg/errors"

// MapFuncs carries one transform function per element kind for Map.
// All four must be non-nil.
//
// Graph is invoked for every nested hypergraph with its identifier in the
// parent scope, and once for the receiver itself with the zero GraphID.
type MapFuncs[N, E, H, L, N2, E2, H2, L2 any] struct {
	Node  func(NodeID, N) N2
	Edge  func(EdgeID, E) E2
	Link  func(LinkID, L) L2
	Graph func(GraphID, H) H2
}

// Map produces a new hypergraph with identical identifiers, vertex lists,
// link endpoints, nesting structure, and identifier counter, but with every
// value passed through the per-kind transform. Relational metadata is never
// handed to the transforms.
//
// Returns ErrNilHypergraph for a nil source and ErrNilTransform when a
// per-kind function is missing. Complexity: O(total elements).
func Map[N, E, H, L, N2, E2, H2, L2 any](
	g *Hypergraph[N, E, H, L],
	fns MapFuncs[N, E, H, L, N2, E2, H2, L2],
) (*Hypergraph[N2, E2, H2, L2], error) {
	if g == nil {
		return nil, errors.Wrap(ErrNilHypergraph, "map")
	}
	if fns.Node == nil || fns.Edge == nil || fns.Link == nil || fns.Graph == nil {
		return nil, errors.Wrap(ErrNilTransform, "map")
	}
	out := mapLevel(g, fns, 0)
	TransformTotal.WithLabelValues("map").Inc()
	return out, nil
}

// mapLevel transforms one nesting level; id is the level's identifier in its
// parent scope (zero for the root).
func mapLevel[N, E, H, L, N2, E2, H2, L2 any](
	g *Hypergraph[N, E, H, L],
	fns MapFuncs[N, E, H, L, N2, E2, H2, L2],
	id GraphID,
) *Hypergraph[N2, E2, H2, L2] {
	out := newLike[N2, E2, H2, L2](g)
	out.value = fns.Graph(id, g.value)
	out.nextID = g.nextID

	for _, nid := range g.nodeOrder {
		rec, ok := g.nodes[nid]
		if !ok {
			continue
		}
		out.putNode(nid, &nodeRec[N2]{
			val:      fns.Node(nid, rec.val),
			links:    append([]linkRef(nil), rec.links...),
			memberOf: cloneEdgeSet(rec.memberOf),
		})
	}
	for _, eid := range g.edgeOrder {
		rec, ok := g.edges[eid]
		if !ok {
			continue
		}
		out.putEdge(eid, &edgeRec[E2]{
			val:      fns.Edge(eid, rec.val),
			verts:    append([]ID(nil), rec.verts...),
			links:    append([]linkRef(nil), rec.links...),
			memberOf: cloneEdgeSet(rec.memberOf),
		})
	}
	for _, lid := range g.linkOrder {
		rec, ok := g.links[lid]
		if !ok {
			continue
		}
		out.putLink(lid, &linkRec[L2]{val: fns.Link(lid, rec.val), src: rec.src, dst: rec.dst})
	}
	for _, gid := range g.graphOrder {
		rec, ok := g.graphs[gid]
		if !ok {
			continue
		}
		out.putGraph(gid, &graphRec[N2, E2, H2, L2]{
			sub:      mapLevel(rec.sub, fns, gid),
			links:    append([]linkRef(nil), rec.links...),
			memberOf: cloneEdgeSet(rec.memberOf),
		})
	}
	return out
}

// FilterFuncs carries one predicate per element kind for Filter. A nil
// predicate keeps every element of its kind.
//
// Graph is invoked for nested hypergraphs; rejecting one drops it with its
// whole content.
type FilterFuncs[N, E, H, L any] struct {
	Node  func(NodeID, N) bool
	Edge  func(EdgeID, E) bool
	Link  func(LinkID, L) bool
	Graph func(GraphID, H) bool
}

// Filter produces a new hypergraph containing exactly the elements that
// satisfy their predicate and whose references all survive: edges keep all
// their vertices, links keep both endpoints. The dependency sweep is the
// cascade rule applied once, as a fixpoint, not incrementally. Survivors
// keep their identifiers; the counter carries over.
//
// Returns ErrNilHypergraph for a nil source.
// Complexity: O(total elements × cascade rounds).
func Filter[N, E, H, L any](
	g *Hypergraph[N, E, H, L],
	fns FilterFuncs[N, E, H, L],
) (*Hypergraph[N, E, H, L], error) {
	if g == nil {
		return nil, errors.Wrap(ErrNilHypergraph, "filter")
	}
	out := filterLevel(g, fns)
	TransformTotal.WithLabelValues("filter").Inc()
	return out, nil
}

func filterLevel[N, E, H, L any](
	g *Hypergraph[N, E, H, L],
	fns FilterFuncs[N, E, H, L],
) *Hypergraph[N, E, H, L] {
	// Pass 1: per-element verdicts.
	keep := make(map[ID]bool, g.Len())
	for _, id := range g.nodeOrder {
		if rec, ok := g.nodes[id]; ok {
			keep[id.ID()] = fns.Node == nil || fns.Node(id, rec.val)
		}
	}
	for _, id := range g.edgeOrder {
		if rec, ok := g.edges[id]; ok {
			keep[id.ID()] = fns.Edge == nil || fns.Edge(id, rec.val)
		}
	}
	for _, id := range g.linkOrder {
		if rec, ok := g.links[id]; ok {
			keep[id.ID()] = fns.Link == nil || fns.Link(id, rec.val)
		}
	}
	for _, id := range g.graphOrder {
		if rec, ok := g.graphs[id]; ok {
			keep[id.ID()] = fns.Graph == nil || fns.Graph(id, rec.sub.value)
		}
	}

	// Pass 2: fixpoint of the dependency rules. Each round only flips keep
	// from true to false, so it terminates.
	for changed := true; changed; {
		changed = false
		for _, id := range g.edgeOrder {
			rec, ok := g.edges[id]
			if !ok || !keep[id.ID()] {
				continue
			}
			for _, v := range rec.verts {
				if !keep[v] {
					keep[id.ID()] = false
					changed = true
					break
				}
			}
			if keep[id.ID()] && g.cfg.minEdgeLinks > 0 {
				alive := 0
				for _, ref := range rec.links {
					if keep[ref.id.ID()] {
						alive++
					}
				}
				// The policy fires on link loss, exactly as in the removal
				// cascade: an edge already below the minimum in the source is
				// alive there and stays alive under an identity filter.
				if alive < len(rec.links) && alive < g.cfg.minEdgeLinks {
					keep[id.ID()] = false
					changed = true
				}
			}
		}
		for _, id := range g.linkOrder {
			rec, ok := g.links[id]
			if !ok || !keep[id.ID()] {
				continue
			}
			if !keep[rec.src] || !keep[rec.dst] {
				keep[id.ID()] = false
				changed = true
			}
		}
	}

	// Pass 3: rebuild the survivors with pruned relational metadata.
	out := newLike[N, E, H, L](g)
	out.value = g.value
	out.nextID = g.nextID
	for _, id := range g.nodeOrder {
		rec, ok := g.nodes[id]
		if !ok || !keep[id.ID()] {
			continue
		}
		out.putNode(id, &nodeRec[N]{
			val:      rec.val,
			links:    pruneRefs(rec.links, keep),
			memberOf: pruneEdgeSet(rec.memberOf, keep),
		})
	}
	for _, id := range g.edgeOrder {
		rec, ok := g.edges[id]
		if !ok || !keep[id.ID()] {
			continue
		}
		out.putEdge(id, &edgeRec[E]{
			val:      rec.val,
			verts:    append([]ID(nil), rec.verts...),
			links:    pruneRefs(rec.links, keep),
			memberOf: pruneEdgeSet(rec.memberOf, keep),
		})
	}
	for _, id := range g.linkOrder {
		rec, ok := g.links[id]
		if !ok || !keep[id.ID()] {
			continue
		}
		out.putLink(id, &linkRec[L]{val: rec.val, src: rec.src, dst: rec.dst})
	}
	for _, id := range g.graphOrder {
		rec, ok := g.graphs[id]
		if !ok || !keep[id.ID()] {
			continue
		}
		out.putGraph(id, &graphRec[N, E, H, L]{
			sub:      filterLevel(rec.sub, fns),
			links:    pruneRefs(rec.links, keep),
			memberOf: pruneEdgeSet(rec.memberOf, keep),
		})
	}
	return out
}

// pruneRefs copies refs, dropping links that did not survive.
func pruneRefs(refs []linkRef, keep map[ID]bool) []linkRef {
	out := make([]linkRef, 0, len(refs))
	for _, ref := range refs {
		if keep[ref.id.ID()] {
			out = append(out, ref)
		}
	}
	return out
}

// pruneEdgeSet copies the membership set, dropping edges that did not
// survive.
func pruneEdgeSet(set map[EdgeID]struct{}, keep map[ID]bool) map[EdgeID]struct{} {
	out := make(map[EdgeID]struct{}, len(set))
	for id := range set {
		if keep[id.ID()] {
			out[id] = struct{}{}
		}
	}
	return out
}
