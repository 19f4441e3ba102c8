// clear.go — whole-level and per-kind clearing.
//
// Per-kind clears go through the integrity engine, so dropping every node
// also sweeps the edges and links that depended on them. Clear drops the
// whole level at once. None of these reset the identifier counter: numbers
// are never reused while the instance is alive, even across a Clear.

package core

import "go.uber.org/zap"

// Clear removes every element stored at this level and returns their
// identifiers. Nested hypergraphs die with their whole content but are
// reported by their graph identifier only (nested ids belong to the nested
// scope). The identifier counter keeps advancing from where it was.
// Complexity: O(total elements).
func (g *Hypergraph[N, E, H, L]) Clear() IDSet {
	g.enter()
	defer g.leave()

	removed := make(IDSet)
	g.collectIDs(removed)
	g.nodes = make(map[NodeID]*nodeRec[N])
	g.nodeOrder = nil
	g.edges = make(map[EdgeID]*edgeRec[E])
	g.edgeOrder = nil
	g.links = make(map[LinkID]*linkRec[L])
	g.linkOrder = nil
	g.graphs = make(map[GraphID]*graphRec[N, E, H, L])
	g.graphOrder = nil
	g.log.Debug("hypergraph cleared",
		zap.String("instance", g.instance.String()),
		zap.Int("removed", removed.Len()),
	)
	return removed
}

// ClearNodes cascade-removes every node at this level. Edges and links that
// depended on the nodes go with them; nested hypergraphs stay.
func (g *Hypergraph[N, E, H, L]) ClearNodes() IDSet {
	return g.clearKind(g.nodeIDsSnapshot())
}

// ClearEdges cascade-removes every edge at this level, along with the links
// attached to them.
func (g *Hypergraph[N, E, H, L]) ClearEdges() IDSet {
	return g.clearKind(g.edgeIDsSnapshot())
}

// ClearLinks cascade-removes every link at this level. Under the default
// policy this never removes anything else.
func (g *Hypergraph[N, E, H, L]) ClearLinks() IDSet {
	return g.clearKind(g.linkIDsSnapshot())
}

// ClearGraphs cascade-removes every nested hypergraph at this level together
// with its whole content.
func (g *Hypergraph[N, E, H, L]) ClearGraphs() IDSet {
	return g.clearKind(g.graphIDsSnapshot())
}

// clearKind removes each identifier in ids through the cascade, tolerating
// identifiers already swept by an earlier cascade in the same call.
func (g *Hypergraph[N, E, H, L]) clearKind(ids []ID) IDSet {
	g.enter()
	defer g.leave()

	removed := make(IDSet)
	for _, id := range ids {
		removed.Merge(g.removeCascade(id))
	}
	return removed
}

func (g *Hypergraph[N, E, H, L]) nodeIDsSnapshot() []ID {
	out := make([]ID, 0, len(g.nodes))
	for _, id := range g.nodeOrder {
		if _, ok := g.nodes[id]; ok {
			out = append(out, id.ID())
		}
	}
	return out
}

func (g *Hypergraph[N, E, H, L]) edgeIDsSnapshot() []ID {
	out := make([]ID, 0, len(g.edges))
	for _, id := range g.edgeOrder {
		if _, ok := g.edges[id]; ok {
			out = append(out, id.ID())
		}
	}
	return out
}

func (g *Hypergraph[N, E, H, L]) linkIDsSnapshot() []ID {
	out := make([]ID, 0, len(g.links))
	for _, id := range g.linkOrder {
		if _, ok := g.links[id]; ok {
			out = append(out, id.ID())
		}
	}
	return out
}

func (g *Hypergraph[N, E, H, L]) graphIDsSnapshot() []ID {
	out := make([]ID, 0, len(g.graphs))
	for _, id := range g.graphOrder {
		if _, ok := g.graphs[id]; ok {
			out = append(out, id.ID())
		}
	}
	return out
}
