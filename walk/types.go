// Package walk provides tunable options and error definitions
// for breadth-first traversal over a core.Hypergraph.
package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hygraph/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrStartNotFound is returned when the start identifier is absent.
	ErrStartNotFound = errors.New("walk: start element not found")

	// ErrGraphNil is returned if a nil hypergraph pointer is passed.
	ErrGraphNil = errors.New("walk: hypergraph is nil")

	// ErrStartKind is returned when the start identifier names a link;
	// links relate elements and cannot anchor a traversal.
	ErrStartKind = errors.New("walk: start element cannot be a link")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Traverse selects which link directions a walk follows from each element.
type Traverse uint8

const (
	// Forward follows outgoing links only (the default).
	Forward Traverse = iota
	// Reverse follows incoming links only.
	Reverse
	// Both follows links regardless of direction.
	Both
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dir selects which link directions to follow.
	Dir Traverse

	// OnEnqueue is called when an element is enqueued, before visiting.
	// Receives the element identifier and its depth from the start.
	OnEnqueue func(id core.ID, depth int)

	// OnVisit is called when visiting an element. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(id core.ID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip hops by returning false.
	// Called for each followed link curr→neighbor.
	FilterNeighbor func(curr, neighbor core.ID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - outgoing links only
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Dir:            Forward,
		OnEnqueue:      func(core.ID, int) {},
		OnVisit:        func(core.ID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.ID) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTraverse selects the link directions to follow.
func WithTraverse(t Traverse) Option {
	return func(o *Options) {
		if t > Both {
			o.err = fmt.Errorf("%w: unknown traverse mode (%d)", ErrOptionViolation, t)
			return
		}
		o.Dir = t
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.ID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(id core.ID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.ID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: elements visited, in visit sequence.
//   - Depth: map from identifier to its distance (in links) from the start.
//   - Parent: map from identifier to its predecessor in the traversal tree.
type Result struct {
	Order  []core.ID
	Depth  map[core.ID]int
	Parent map[core.ID]core.ID
}

// PathTo reconstructs the path from the start element to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.ID) ([]core.ID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("walk: no path to %s", dest)
	}
	// build reversed path
	path := []core.ID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
