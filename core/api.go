// api.go — read-only counts, the instance's own value, and the Stats
// snapshot. No algorithms or hidden state here.

package core

// Value returns the instance's own value. Meaningful for nested instances
// and for roots that called SetValue; otherwise the zero H.
func (g *Hypergraph[N, E, H, L]) Value() H { return g.value }

// SetValue replaces the instance's own value.
func (g *Hypergraph[N, E, H, L]) SetValue(value H) {
	g.enter()
	defer g.leave()
	g.value = value
}

// NodeCount returns the number of nodes stored at this level.
// Complexity: O(1).
func (g *Hypergraph[N, E, H, L]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges stored at this level.
func (g *Hypergraph[N, E, H, L]) EdgeCount() int { return len(g.edges) }

// LinkCount returns the number of links stored at this level.
func (g *Hypergraph[N, E, H, L]) LinkCount() int { return len(g.links) }

// GraphCount returns the number of nested hypergraphs stored at this level.
func (g *Hypergraph[N, E, H, L]) GraphCount() int { return len(g.graphs) }

// Len returns the total number of elements stored at this level, nested
// contents not included.
func (g *Hypergraph[N, E, H, L]) Len() int {
	return len(g.nodes) + len(g.edges) + len(g.links) + len(g.graphs)
}

// Count returns the number of elements of one kind at this level.
// An invalid kind counts zero.
func (g *Hypergraph[N, E, H, L]) Count(kind Kind) int {
	switch kind {
	case KindNode:
		return len(g.nodes)
	case KindEdge:
		return len(g.edges)
	case KindLink:
		return len(g.links)
	case KindGraph:
		return len(g.graphs)
	default:
		return 0
	}
}

// Stats is a point-in-time summary of one hypergraph level.
type Stats struct {
	Nodes  int
	Edges  int
	Links  int
	Graphs int
	// NextID is the value the identifier counter will issue next, minus one:
	// an upper bound on how many identifiers this instance ever issued.
	NextID uint64
}

// Stats returns a snapshot of per-kind counts and the identifier counter.
// Complexity: O(1).
func (g *Hypergraph[N, E, H, L]) Stats() Stats {
	return Stats{
		Nodes:  len(g.nodes),
		Edges:  len(g.edges),
		Links:  len(g.links),
		Graphs: len(g.graphs),
		NextID: g.nextID,
	}
}
