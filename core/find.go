// find.go — first-match predicate searches, in insertion order.

package core

// FindNode returns the identifier of the first node (in insertion order)
// matching the predicate. Complexity: O(n).
func (g *Hypergraph[N, E, H, L]) FindNode(pred func(NodeID, N) bool) (NodeID, bool) {
	for _, id := range g.nodeOrder {
		if rec, ok := g.nodes[id]; ok && pred(id, rec.val) {
			return id, true
		}
	}
	return 0, false
}

// FindEdge returns the identifier of the first edge matching the predicate.
func (g *Hypergraph[N, E, H, L]) FindEdge(pred func(EdgeID, E) bool) (EdgeID, bool) {
	for _, id := range g.edgeOrder {
		if rec, ok := g.edges[id]; ok && pred(id, rec.val) {
			return id, true
		}
	}
	return 0, false
}

// FindLink returns the identifier of the first link matching the predicate.
func (g *Hypergraph[N, E, H, L]) FindLink(pred func(LinkID, L) bool) (LinkID, bool) {
	for _, id := range g.linkOrder {
		if rec, ok := g.links[id]; ok && pred(id, rec.val) {
			return id, true
		}
	}
	return 0, false
}

// FindGraph returns the identifier of the first nested hypergraph matching
// the predicate over its value.
func (g *Hypergraph[N, E, H, L]) FindGraph(pred func(GraphID, H) bool) (GraphID, bool) {
	for _, id := range g.graphOrder {
		if rec, ok := g.graphs[id]; ok && pred(id, rec.sub.value) {
			return id, true
		}
	}
	return 0, false
}
