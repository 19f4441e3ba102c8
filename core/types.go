// Package core defines the central Hypergraph type and its element model:
// nodes, hyperedges, directed links, and nested hypergraphs, all addressed
// by kind-tagged identifiers and carrying caller-supplied values.
//
// This file declares identifier types, Direction, element records,
// Hypergraph, Option, and the New constructor. Sentinel errors live in
// errors.go; the removal cascade in remove.go; map/filter in transform.go.
package core

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind tags an identifier with its element kind so that, for example, a node
// identifier can never be silently mistaken for a link identifier.
type Kind uint8

const (
	// KindNode identifies a leaf element holding a value.
	KindNode Kind = iota + 1
	// KindEdge identifies a hyperedge connecting two or more elements.
	KindEdge
	// KindLink identifies a directed relation between two elements.
	KindLink
	// KindGraph identifies a nested hypergraph.
	KindGraph
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindLink:
		return "link"
	case KindGraph:
		return "graph"
	default:
		return "invalid"
	}
}

// valid reports whether k is one of the four element kinds.
func (k Kind) valid() bool {
	return k >= KindNode && k <= KindGraph
}

// ID is the kind-tagged handle to an element. The zero ID is invalid and
// never issued. IDs are comparable and usable as map keys.
type ID struct {
	kind Kind
	num  uint64
}

// Kind returns the element kind encoded in the identifier.
func (id ID) Kind() Kind { return id.kind }

// Num returns the numeric part of the identifier. Numbers are unique across
// all kinds within one Hypergraph instance and are never reused while the
// instance is alive.
func (id ID) Num() uint64 { return id.num }

// IsZero reports whether id is the invalid zero identifier.
func (id ID) IsZero() bool { return id.kind == 0 }

// String renders the identifier as the kind initial followed by the number,
// e.g. "n3", "e7", "l12", "g4".
func (id ID) String() string {
	switch id.kind {
	case KindNode:
		return fmt.Sprintf("n%d", id.num)
	case KindEdge:
		return fmt.Sprintf("e%d", id.num)
	case KindLink:
		return fmt.Sprintf("l%d", id.num)
	case KindGraph:
		return fmt.Sprintf("g%d", id.num)
	default:
		return "invalid"
	}
}

// NodeID identifies a node. Convert to the heterogeneous handle with ID().
type NodeID uint64

// EdgeID identifies a hyperedge.
type EdgeID uint64

// LinkID identifies a link.
type LinkID uint64

// GraphID identifies a nested hypergraph.
type GraphID uint64

// ID returns the kind-tagged handle for the node identifier.
func (n NodeID) ID() ID { return ID{kind: KindNode, num: uint64(n)} }

// ID returns the kind-tagged handle for the edge identifier.
func (e EdgeID) ID() ID { return ID{kind: KindEdge, num: uint64(e)} }

// ID returns the kind-tagged handle for the link identifier.
func (l LinkID) ID() ID { return ID{kind: KindLink, num: uint64(l)} }

// ID returns the kind-tagged handle for the graph identifier.
func (g GraphID) ID() ID { return ID{kind: KindGraph, num: uint64(g)} }

// Direction distinguishes the two ends of a link relative to an element.
type Direction uint8

const (
	// Outgoing marks a link leaving the element (the element is the source).
	Outgoing Direction = iota
	// Incoming marks a link arriving at the element (the element is the target).
	Incoming
)

// Opposite returns the reversed Direction.
func (d Direction) Opposite() Direction {
	if d == Outgoing {
		return Incoming
	}
	return Outgoing
}

// String returns "outgoing" or "incoming".
func (d Direction) String() string {
	if d == Outgoing {
		return "outgoing"
	}
	return "incoming"
}

// linkRef records one incident link of a linkable element together with the
// direction the link has relative to that element.
type linkRef struct {
	id  LinkID
	dir Direction
}

// nodeRec is the stored form of a node: its value plus relational metadata.
// The owning Hypergraph is the only writer of links and memberOf.
type nodeRec[N any] struct {
	val      N
	links    []linkRef           // incident links, in attachment order
	memberOf map[EdgeID]struct{} // edges using this node as a vertex
}

// edgeRec is the stored form of a hyperedge. verts always has length >= 2
// between public mutations; links doubles as the edge's link-id set.
type edgeRec[E any] struct {
	val      E
	verts    []ID // ordered vertex list; nodes, edges, or graphs
	links    []linkRef
	memberOf map[EdgeID]struct{}
}

// linkRec is the stored form of a link. src and dst resolve to existing
// linkable elements at creation time.
type linkRec[L any] struct {
	val      L
	src, dst ID
}

// graphRec is the stored form of a nested hypergraph. sub is wholly owned by
// the parent record and never shared.
type graphRec[N, E, H, L any] struct {
	sub      *Hypergraph[N, E, H, L]
	links    []linkRef
	memberOf map[EdgeID]struct{}
}

// config carries construction-time policy shared by an instance and every
// instance derived from it (clones, transforms, nested graphs).
type config struct {
	// minEdgeLinks is the minimum number of incident links an edge must keep
	// for link removal to leave it alive. Zero disables the rule: removing a
	// link then never cascades into edge removal.
	minEdgeLinks int
	logger       *zap.Logger
}

// Option configures a Hypergraph before creation.
type Option func(*config)

// WithMinEdgeLinks sets the minimum incident-link count an edge must retain
// when links are removed. Edges dropping below n are cascade-removed.
// Values < 1 disable the rule (the default).
func WithMinEdgeLinks(n int) Option {
	return func(c *config) { c.minEdgeLinks = n }
}

// WithLogger attaches a structured logger. Mutations of interest (cascades,
// extends, clears) are logged at Debug level. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Hypergraph is a self-nesting directed hypergraph: nodes, hyperedges over
// two or more heterogeneous vertices, directed links between arbitrary
// elements, and wholly-owned nested hypergraphs.
//
// Type parameters carry the per-kind value types:
//
//	N — node values, E — edge values, H — graph values, L — link values.
//
// Identifiers are allocated from one per-instance monotonic counter and are
// never reused while the instance is alive, even after removal, so stale
// references surface as absence rather than aliasing.
//
// Concurrency: exactly one logical writer at a time (see guard.go). Read
// iterators take no locks and tolerate interleaved removal by skipping
// vanished identifiers.
type Hypergraph[N, E, H, L any] struct {
	cfg      config
	instance uuid.UUID
	log      *zap.Logger

	// value is the instance's own value when nested inside a parent.
	// A root instance keeps the zero value unless SetValue is called.
	value H

	// nextID is the shared identifier counter; see allocate in store.go.
	nextID uint64

	nodes      map[NodeID]*nodeRec[N]
	nodeOrder  []NodeID
	edges      map[EdgeID]*edgeRec[E]
	edgeOrder  []EdgeID
	links      map[LinkID]*linkRec[L]
	linkOrder  []LinkID
	graphs     map[GraphID]*graphRec[N, E, H, L]
	graphOrder []GraphID

	// writers is the single-writer contract detector; see guard.go.
	writers int32
}

// New creates an empty Hypergraph with the given options.
// Complexity: O(1).
func New[N, E, H, L any](opts ...Option) *Hypergraph[N, E, H, L] {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return &Hypergraph[N, E, H, L]{
		cfg:      c,
		instance: uuid.New(),
		log:      c.logger,
		nodes:    make(map[NodeID]*nodeRec[N]),
		edges:    make(map[EdgeID]*edgeRec[E]),
		links:    make(map[LinkID]*linkRec[L]),
		graphs:   make(map[GraphID]*graphRec[N, E, H, L]),
	}
}

// newLike creates an empty Hypergraph inheriting g's policy and logger but
// with possibly different value types. Used by nested instances and by the
// structure-preserving transforms.
func newLike[N2, E2, H2, L2, N, E, H, L any](g *Hypergraph[N, E, H, L]) *Hypergraph[N2, E2, H2, L2] {
	return &Hypergraph[N2, E2, H2, L2]{
		cfg:      g.cfg,
		instance: uuid.New(),
		log:      g.log,
		nodes:    make(map[NodeID]*nodeRec[N2]),
		edges:    make(map[EdgeID]*edgeRec[E2]),
		links:    make(map[LinkID]*linkRec[L2]),
		graphs:   make(map[GraphID]*graphRec[N2, E2, H2, L2]),
	}
}

// InstanceID returns the UUID identifying this instance in logs and guard
// diagnostics. It plays no role in element addressing.
func (g *Hypergraph[N, E, H, L]) InstanceID() uuid.UUID { return g.instance }
