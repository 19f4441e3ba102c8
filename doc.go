// Package hygraph is an in-memory, self-nesting hypergraph: nodes,
// hyperedges over two or more heterogeneous vertices, directed links between
// arbitrary elements, and whole hypergraphs nested as elements of other
// hypergraphs.
//
// What it gives you:
//   - Kind-tagged identifiers from one monotonic per-instance counter —
//     never reused, so stale references surface as absence, not aliasing
//   - A cascading integrity engine: removing any element sweeps everything
//     that can no longer stand (edges below two vertices, links losing an
//     endpoint, nested content of a removed scope)
//   - Structure-preserving transforms: Map, Filter, Extend, Clone
//   - Lazy, restartable iterators over live state: per-kind, one-hop
//     neighborhoods, and isolated-element detection
//   - Breadth-first traversal with hooks, depth limits, and direction modes
//   - A read-only export visitor and detached snapshots for encoders
//
// Everything is organized under four subpackages:
//
//	core/    — the Hypergraph type: elements, identifiers, cascade, transforms
//	walk/    — breadth-first traversal over links (walk.BFS)
//	builder/ — deterministic labeled fixtures: chains, stars, meshes, towers
//	export/  — visitor-based walking and snapshot capture
//
// Quick ASCII example:
//
//	n1━━━[e1]━━━n2        a hyperedge e1 over nodes n1 and n2,
//	 │            │        a link n1→n2,
//	 └─────→──────┘        and removing n1 cascades into e1 and the link.
//
//	go get github.com/katalvlaran/hygraph
package hygraph
