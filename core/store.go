// store.go — identifier allocation and raw element storage.
//
// Four parallel identifier-keyed containers (nodes, edges, links, graphs),
// each pairing a map for O(1) access with an insertion-order slice for
// deterministic iteration. The raw primitives here commit or delete single
// entries without enforcing cross-element invariants; only insert.go and
// remove.go call them, wrapped in validate-then-commit or cascade logic.
//
// Order slices are append-only between Clear calls: removal deletes the map
// entry and leaves the slice untouched, so live iterators stay valid and
// simply skip identifiers that no longer resolve.

package core

// allocate issues the next identifier number. One counter serves all four
// kinds, so numbers are unique across kinds and detect cross-kind confusion
// too. Never returns a previously issued number during the instance's life.
func (g *Hypergraph[N, E, H, L]) allocate() uint64 {
	g.nextID++
	return g.nextID
}

// Contains reports whether id currently resolves to a stored element.
// Complexity: O(1).
func (g *Hypergraph[N, E, H, L]) Contains(id ID) bool {
	switch id.kind {
	case KindNode:
		_, ok := g.nodes[NodeID(id.num)]
		return ok
	case KindEdge:
		_, ok := g.edges[EdgeID(id.num)]
		return ok
	case KindLink:
		_, ok := g.links[LinkID(id.num)]
		return ok
	case KindGraph:
		_, ok := g.graphs[GraphID(id.num)]
		return ok
	default:
		return false
	}
}

// linksOf returns a pointer to the incident-link list of a linkable element,
// or nil if id does not resolve or is a link.
func (g *Hypergraph[N, E, H, L]) linksOf(id ID) *[]linkRef {
	switch id.kind {
	case KindNode:
		if rec, ok := g.nodes[NodeID(id.num)]; ok {
			return &rec.links
		}
	case KindEdge:
		if rec, ok := g.edges[EdgeID(id.num)]; ok {
			return &rec.links
		}
	case KindGraph:
		if rec, ok := g.graphs[GraphID(id.num)]; ok {
			return &rec.links
		}
	}
	return nil
}

// memberOf returns the set of edges using id as a vertex, or nil if id does
// not resolve or is a link.
func (g *Hypergraph[N, E, H, L]) memberOf(id ID) map[EdgeID]struct{} {
	switch id.kind {
	case KindNode:
		if rec, ok := g.nodes[NodeID(id.num)]; ok {
			return rec.memberOf
		}
	case KindEdge:
		if rec, ok := g.edges[EdgeID(id.num)]; ok {
			return rec.memberOf
		}
	case KindGraph:
		if rec, ok := g.graphs[GraphID(id.num)]; ok {
			return rec.memberOf
		}
	}
	return nil
}

// putNode commits a node record under an explicit identifier.
func (g *Hypergraph[N, E, H, L]) putNode(id NodeID, rec *nodeRec[N]) {
	g.nodes[id] = rec
	g.nodeOrder = append(g.nodeOrder, id)
}

// putEdge commits an edge record under an explicit identifier.
func (g *Hypergraph[N, E, H, L]) putEdge(id EdgeID, rec *edgeRec[E]) {
	g.edges[id] = rec
	g.edgeOrder = append(g.edgeOrder, id)
}

// putLink commits a link record under an explicit identifier.
func (g *Hypergraph[N, E, H, L]) putLink(id LinkID, rec *linkRec[L]) {
	g.links[id] = rec
	g.linkOrder = append(g.linkOrder, id)
}

// putGraph commits a graph record under an explicit identifier.
func (g *Hypergraph[N, E, H, L]) putGraph(id GraphID, rec *graphRec[N, E, H, L]) {
	g.graphs[id] = rec
	g.graphOrder = append(g.graphOrder, id)
}

// collectIDs adds every identifier stored at this level into dst. Nested
// instances are represented by their graph identifier only: identifiers are
// scoped per instance, so a nested id may collide numerically with a parent
// id and must never be flattened into the parent's set.
func (g *Hypergraph[N, E, H, L]) collectIDs(dst IDSet) {
	for id := range g.nodes {
		dst.Add(id.ID())
	}
	for id := range g.edges {
		dst.Add(id.ID())
	}
	for id := range g.links {
		dst.Add(id.ID())
	}
	for id := range g.graphs {
		dst.Add(id.ID())
	}
}
