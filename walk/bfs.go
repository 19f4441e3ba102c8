// Package walk provides breadth-first traversal over a core.Hypergraph,
// returning link-hop distances, parent identifiers, and visit order.
//
// The walk explores elements in increasing link distance from a start
// element, with optional hooks, depth limiting, direction selection, and
// neighbor filtering. Hyperedge membership is not followed: a hop is always
// one link, so an edge is reached only through links pointing at it.
package walk

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hygraph/core"
)

// queueItem pairs an element identifier with its depth and its parent.
type queueItem struct {
	id     core.ID
	depth  int
	parent core.ID // zero for the root
}

// walker encapsulates mutable traversal state.
type walker[N, E, H, L any] struct {
	graph   *core.Hypergraph[N, E, H, L]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.ID]bool
	res     *Result
}

// BFS runs breadth-first traversal on g starting from start, applying any
// number of functional Options. Returns ErrGraphNil, ErrStartKind, or
// ErrStartNotFound for invalid input, ErrOptionViolation for bad options,
// or any user-supplied hook error.
// Complexity: O(elements reached + links followed).
func BFS[N, E, H, L any](g *core.Hypergraph[N, E, H, L], start core.ID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate the start element
	if start.Kind() == core.KindLink {
		return nil, errors.Wrapf(ErrStartKind, "start %s", start)
	}
	if !g.Contains(start) {
		return nil, errors.Wrapf(ErrStartNotFound, "start %s", start)
	}

	w := &walker[N, E, H, L]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[core.ID]bool),
		res: &Result{
			Depth:  make(map[core.ID]int),
			Parent: make(map[core.ID]core.ID),
		},
	}

	// Seed the queue with the start element (no parent)
	w.enqueue(start, 0, core.ID{})
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[N, E, H, L]) enqueue(id core.ID, d int, parent core.ID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if !parent.IsZero() {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, E, H, L]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the element in Order and calls OnVisit.
func (w *walker[N, E, H, L]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return errors.Wrapf(err, "walk: OnVisit at %s", item.id)
	}
	return nil
}

// enqueueNeighbors walks the element's links in the selected directions,
// applies filtering and MaxDepth, and enqueues each unseen neighbor.
// An element removed by a hook mid-walk simply contributes no hops.
func (w *walker[N, E, H, L]) enqueueNeighbors(item queueItem) error {
	dirs := []core.Direction{core.Outgoing}
	switch w.opts.Dir {
	case Reverse:
		dirs = []core.Direction{core.Incoming}
	case Both:
		dirs = []core.Direction{core.Outgoing, core.Incoming}
	}

	for _, dir := range dirs {
		it, err := w.graph.Neighbors(item.id, dir)
		if err != nil {
			// The element vanished after being enqueued; nothing to follow.
			if errors.Is(err, core.ErrUnknownIdentifier) {
				return nil
			}
			return err
		}
		for {
			// cancellation check inside neighbor iteration
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}

			nbr, ok := it.Next()
			if !ok {
				break
			}
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			nextDepth := item.depth + 1
			if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
				continue
			}

			// first time seen?
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.id)
			}
		}
	}
	return nil
}
