package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue []uint32
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Returns ErrGraphNil or ErrStartOutOfRange
// for invalid input, ErrOptionViolation for bad options, or any
// user-supplied hook error.
func BFS(g Graph, start uint32, opts ...Option) (*Result, error) {
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

	// Validate start node
	n := g.NodeCount()
	if int(start) >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, n)
	}

	// Prepare walker; depth -1 and parent None mean "not reached".
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]uint32, 0, n),
		res: &Result{
			Order:  make([]uint32, 0, n),
			Depth:  make([]int, n),
			Parent: make([]uint32, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = None
	}

	// Seed queue with the start node (no parent)
	w.enqueue(start, 0, None)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks node reached at depth d, records its parent, and adds it
// to the queue.
func (w *walker) enqueue(node uint32, d int, parent uint32) {
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.queue = append(w.queue, node)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(node); err != nil {
			return err
		}
		w.enqueueNeighbors(node)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(node uint32) error {
	w.res.Order = append(w.res.Order, node)
	if err := w.opts.OnVisit(node, w.res.Depth[node]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", node, err)
	}

	return nil
}

// enqueueNeighbors scans node's zero-copy neighbor view, applies MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(node uint32) {
	nextDepth := w.res.Depth[node] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(node) {
		// first time seen?
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, nextDepth, node)
		}
	}
}
