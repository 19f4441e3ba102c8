// errors.go — sentinel errors for the core package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Context (which identifier, which operation) is attached at the call
//     site with pkg/errors.Wrapf, keeping the sentinel reachable via Is.
//   - Validation happens before any mutation is committed, so no error ever
//     leaves the structure partially mutated.

package core

import "errors"

// ErrInsufficientVertices indicates an edge insertion with fewer than two
// vertices. Every hyperedge connects at least two elements.
var ErrInsufficientVertices = errors.New("core: edge needs at least two vertices")

// ErrDanglingEndpoint indicates an insertion referencing an identifier that
// does not currently resolve: a link endpoint or an edge vertex.
var ErrDanglingEndpoint = errors.New("core: reference does not resolve")

// ErrUnknownIdentifier indicates a direct lookup or set of an identifier that
// was never issued or has been removed. Removal of an unknown identifier is
// a no-op success instead.
var ErrUnknownIdentifier = errors.New("core: unknown identifier")

// ErrKindMismatch indicates an identifier of the wrong kind for the
// operation, e.g. a link used as an edge vertex or as a link endpoint.
var ErrKindMismatch = errors.New("core: identifier kind mismatch")

// ErrNilTransform indicates that Map was invoked with a missing per-kind
// transform function.
var ErrNilTransform = errors.New("core: nil transform function")

// ErrNilHypergraph indicates a nil receiver or argument where a constructed
// Hypergraph is required.
var ErrNilHypergraph = errors.New("core: hypergraph is nil")
