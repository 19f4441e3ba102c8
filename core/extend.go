// extend.go — identifier-safe merge of another hypergraph's elements.
//
// Every donor identifier is remapped to a freshly allocated receiver
// identifier, so a merge can never collide with anything the receiver ever
// issued. Allocation happens for all donor elements up front, in kind order
// (nodes, edges, links, graphs); references are rewritten under the complete
// mapping before commit, so every reference target exists by the time it is
// needed — including edges whose vertices are other edges.

package core

import "go.uber.org/zap"

// Extend merges the elements of donor into g and returns the mapping from
// donor identifiers to their fresh receiver identifiers. The donor is only
// read; its own value is not merged. Nested donor hypergraphs are deep
// copies: their contents keep their identifiers, which live in the nested
// instance's own scope and cannot collide with the receiver's.
//
// Extending g with itself merges a snapshot taken before the first commit.
// A nil donor is a no-op returning an empty mapping.
// Complexity: O(donor elements + references rewritten).
func (g *Hypergraph[N, E, H, L]) Extend(donor *Hypergraph[N, E, H, L]) map[ID]ID {
	g.enter()
	defer g.leave()

	remap := make(map[ID]ID)
	if donor == nil {
		return remap
	}
	if donor == g {
		donor = g.Clone()
	}

	// Allocate receiver identifiers for every live donor element, kind by
	// kind, before rewriting anything.
	for _, id := range donor.nodeOrder {
		if _, ok := donor.nodes[id]; ok {
			remap[id.ID()] = NodeID(g.allocate()).ID()
		}
	}
	for _, id := range donor.edgeOrder {
		if _, ok := donor.edges[id]; ok {
			remap[id.ID()] = EdgeID(g.allocate()).ID()
		}
	}
	for _, id := range donor.linkOrder {
		if _, ok := donor.links[id]; ok {
			remap[id.ID()] = LinkID(g.allocate()).ID()
		}
	}
	for _, id := range donor.graphOrder {
		if _, ok := donor.graphs[id]; ok {
			remap[id.ID()] = GraphID(g.allocate()).ID()
		}
	}

	// Commit in kind order with all references rewritten.
	for _, id := range donor.nodeOrder {
		rec, ok := donor.nodes[id]
		if !ok {
			continue
		}
		g.putNode(NodeID(remap[id.ID()].num), &nodeRec[N]{
			val:      rec.val,
			links:    remapRefs(rec.links, remap),
			memberOf: remapEdgeSet(rec.memberOf, remap),
		})
	}
	for _, id := range donor.edgeOrder {
		rec, ok := donor.edges[id]
		if !ok {
			continue
		}
		verts := make([]ID, len(rec.verts))
		for i, v := range rec.verts {
			verts[i] = remap[v]
		}
		g.putEdge(EdgeID(remap[id.ID()].num), &edgeRec[E]{
			val:      rec.val,
			verts:    verts,
			links:    remapRefs(rec.links, remap),
			memberOf: remapEdgeSet(rec.memberOf, remap),
		})
	}
	for _, id := range donor.linkOrder {
		rec, ok := donor.links[id]
		if !ok {
			continue
		}
		g.putLink(LinkID(remap[id.ID()].num), &linkRec[L]{
			val: rec.val,
			src: remap[rec.src],
			dst: remap[rec.dst],
		})
	}
	for _, id := range donor.graphOrder {
		rec, ok := donor.graphs[id]
		if !ok {
			continue
		}
		g.putGraph(GraphID(remap[id.ID()].num), &graphRec[N, E, H, L]{
			sub:      rec.sub.Clone(),
			links:    remapRefs(rec.links, remap),
			memberOf: remapEdgeSet(rec.memberOf, remap),
		})
	}

	ExtendTotal.Inc()
	g.log.Debug("hypergraph extended",
		zap.String("instance", g.instance.String()),
		zap.String("donor", donor.instance.String()),
		zap.Int("merged", len(remap)),
	)
	return remap
}

// remapRefs rewrites an incident-link list under the identifier mapping.
func remapRefs(refs []linkRef, remap map[ID]ID) []linkRef {
	out := make([]linkRef, len(refs))
	for i, ref := range refs {
		out[i] = linkRef{id: LinkID(remap[ref.id.ID()].num), dir: ref.dir}
	}
	return out
}

// remapEdgeSet rewrites an edge-membership set under the identifier mapping.
func remapEdgeSet(set map[EdgeID]struct{}, remap map[ID]ID) map[EdgeID]struct{} {
	out := make(map[EdgeID]struct{}, len(set))
	for id := range set {
		out[EdgeID(remap[id.ID()].num)] = struct{}{}
	}
	return out
}
