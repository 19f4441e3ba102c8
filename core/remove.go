// remove.go — the integrity engine.
//
// Public removal is a breadth-first cascade over a worklist of identifiers:
// removing one element enqueues every element whose invariant would break
// without it. An enqueued set bounds every identifier to one visit, so the
// cascade terminates even when edges reference edges or nesting is cyclic
// through links. After Remove returns, every surviving edge has at least two
// vertices and every surviving link's endpoints resolve.

package core

import "go.uber.org/zap"

// Remove deletes the element with the given identifier together with every
// element that can no longer satisfy its invariants, and returns the set of
// identifiers removed from this scope. A removed nested hypergraph appears
// as its graph identifier only; its owned content is destroyed with it but
// belongs to the nested identifier scope, not this one.
//
// Removing an identifier that was never issued or is already gone is a
// no-op returning an empty set.
// Complexity: O(total removed + incident references touched).
func (g *Hypergraph[N, E, H, L]) Remove(id ID) IDSet {
	g.enter()
	defer g.leave()

	RemoveTotal.WithLabelValues(id.kind.String()).Inc()
	removed := g.removeCascade(id)
	CascadeSize.Observe(float64(removed.Len()))
	if removed.Len() > 1 {
		g.log.Debug("removal cascaded",
			zap.String("instance", g.instance.String()),
			zap.Stringer("root", id),
			zap.Int("removed", removed.Len()),
		)
	}
	return removed
}

// removeCascade runs the worklist without touching the writer guard, so the
// clear operations and Extend can reuse it under their own guard.
func (g *Hypergraph[N, E, H, L]) removeCascade(id ID) IDSet {
	removed := make(IDSet)
	if !g.Contains(id) {
		return removed
	}

	queue := make([]ID, 0, 8)
	enqueued := make(map[ID]struct{})
	push := func(x ID) {
		if _, seen := enqueued[x]; !seen {
			enqueued[x] = struct{}{}
			queue = append(queue, x)
		}
	}
	push(id)

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		switch cur.kind {
		case KindNode:
			g.removeNode(NodeID(cur.num), push, removed)
		case KindEdge:
			g.removeEdge(EdgeID(cur.num), push, removed)
		case KindLink:
			g.removeLink(LinkID(cur.num), push, removed)
		case KindGraph:
			g.removeGraph(GraphID(cur.num), push, removed)
		}
	}
	return removed
}

// removeNode deletes one node: its incident links are enqueued and every
// edge using it as a vertex loses that vertex (and dies if it drops below
// two).
func (g *Hypergraph[N, E, H, L]) removeNode(id NodeID, push func(ID), removed IDSet) {
	rec, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, ref := range rec.links {
		push(ref.id.ID())
	}
	for eid := range rec.memberOf {
		g.detachVertex(eid, id.ID(), push)
	}
	delete(g.nodes, id)
	removed.Add(id.ID())
}

// removeEdge deletes one hyperedge. Its attached links (both the links it
// includes and links pointing at it — one incident list covers both) are
// enqueued, edges using it as a vertex are trimmed, and its own vertices
// drop their membership records.
func (g *Hypergraph[N, E, H, L]) removeEdge(id EdgeID, push func(ID), removed IDSet) {
	rec, ok := g.edges[id]
	if !ok {
		return
	}
	for _, ref := range rec.links {
		push(ref.id.ID())
	}
	for eid := range rec.memberOf {
		g.detachVertex(eid, id.ID(), push)
	}
	for _, v := range rec.verts {
		if m := g.memberOf(v); m != nil {
			delete(m, id)
		}
	}
	delete(g.edges, id)
	removed.Add(id.ID())
}

// removeLink deletes one link and detaches it from the incident lists of
// both endpoints. Under the minimum-edge-links policy an edge endpoint left
// with too few links is enqueued; with the default policy (zero) link
// removal never cascades further.
func (g *Hypergraph[N, E, H, L]) removeLink(id LinkID, push func(ID), removed IDSet) {
	rec, ok := g.links[id]
	if !ok {
		return
	}
	g.detachLink(rec.src, id, push)
	if rec.dst != rec.src {
		g.detachLink(rec.dst, id, push)
	}
	delete(g.links, id)
	removed.Add(id.ID())
}

// removeGraph deletes one nested hypergraph: the graph identifier is
// stripped from the parent scope exactly like a node, and its whole owned
// content dies with it. The removed set reports the graph identifier only —
// nested identifiers live in the nested instance's own scope and can collide
// numerically with surviving parent identifiers.
func (g *Hypergraph[N, E, H, L]) removeGraph(id GraphID, push func(ID), removed IDSet) {
	rec, ok := g.graphs[id]
	if !ok {
		return
	}
	for _, ref := range rec.links {
		push(ref.id.ID())
	}
	for eid := range rec.memberOf {
		g.detachVertex(eid, id.ID(), push)
	}
	delete(g.graphs, id)
	removed.Add(id.ID())
}

// detachVertex removes every occurrence of v from the vertex list of edge
// eid and enqueues the edge when its vertex count drops below two.
func (g *Hypergraph[N, E, H, L]) detachVertex(eid EdgeID, v ID, push func(ID)) {
	rec, ok := g.edges[eid]
	if !ok {
		return
	}
	kept := rec.verts[:0]
	for _, x := range rec.verts {
		if x != v {
			kept = append(kept, x)
		}
	}
	rec.verts = kept
	if len(rec.verts) < 2 {
		push(eid.ID())
	}
}

// detachLink removes every reference to link lid from the incident list of
// endpoint ep, applying the minimum-edge-links policy when ep is an edge.
// Endpoints already removed by the cascade are skipped silently.
func (g *Hypergraph[N, E, H, L]) detachLink(ep ID, lid LinkID, push func(ID)) {
	refs := g.linksOf(ep)
	if refs == nil {
		return
	}
	kept := (*refs)[:0]
	for _, ref := range *refs {
		if ref.id != lid {
			kept = append(kept, ref)
		}
	}
	*refs = kept
	if ep.kind == KindEdge && g.cfg.minEdgeLinks > 0 && len(kept) < g.cfg.minEdgeLinks {
		push(ep)
	}
}
