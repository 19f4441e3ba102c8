// clone.go — deep structural copy.
//
// Clone preserves identifiers, relational metadata, nesting, and the
// identifier counter, so future insertions on the copy can never collide
// with identifiers the original had already issued. Values are copied
// shallowly: pointer-shaped values stay shared, the structure never is.

package core

// Clone returns a deep copy of the hypergraph: records, incident lists,
// vertex lists, nested instances, counter, and policy. The source is only
// read. Complexity: O(total elements).
func (g *Hypergraph[N, E, H, L]) Clone() *Hypergraph[N, E, H, L] {
	out := newLike[N, E, H, L](g)
	out.value = g.value
	out.nextID = g.nextID

	for _, id := range g.nodeOrder {
		rec, ok := g.nodes[id]
		if !ok {
			continue
		}
		out.putNode(id, &nodeRec[N]{
			val:      rec.val,
			links:    append([]linkRef(nil), rec.links...),
			memberOf: cloneEdgeSet(rec.memberOf),
		})
	}
	for _, id := range g.edgeOrder {
		rec, ok := g.edges[id]
		if !ok {
			continue
		}
		out.putEdge(id, &edgeRec[E]{
			val:      rec.val,
			verts:    append([]ID(nil), rec.verts...),
			links:    append([]linkRef(nil), rec.links...),
			memberOf: cloneEdgeSet(rec.memberOf),
		})
	}
	for _, id := range g.linkOrder {
		rec, ok := g.links[id]
		if !ok {
			continue
		}
		out.putLink(id, &linkRec[L]{val: rec.val, src: rec.src, dst: rec.dst})
	}
	for _, id := range g.graphOrder {
		rec, ok := g.graphs[id]
		if !ok {
			continue
		}
		out.putGraph(id, &graphRec[N, E, H, L]{
			sub:      rec.sub.Clone(),
			links:    append([]linkRef(nil), rec.links...),
			memberOf: cloneEdgeSet(rec.memberOf),
		})
	}
	TransformTotal.WithLabelValues("clone").Inc()
	return out
}

func cloneEdgeSet(src map[EdgeID]struct{}) map[EdgeID]struct{} {
	dst := make(map[EdgeID]struct{}, len(src))
	for id := range src {
		dst[id] = struct{}{}
	}
	return dst
}
