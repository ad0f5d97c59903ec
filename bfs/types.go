// Package bfs provides tunable options and error definitions for
// breadth-first search over an id-indexed graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start id is not a node.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// None marks "no node" in Parent links: the root's parent and the parent
// of every unreached node.
const None = ^uint32(0)

// Graph is the read-only capability surface BFS traverses. All csr graph
// types satisfy it directly or via their CSR views.
type Graph interface {
	// NodeCount reports the number of nodes; valid ids are [0, NodeCount).
	NodeCount() int

	// Neighbors returns node's neighbor ids in ascending order as a
	// zero-copy view. BFS never modifies it.
	Neighbors(node uint32) []uint32
}

// Option configures BFS behavior via functional arguments. If an Option
// is invalid (e.g. negative depth), it is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(node uint32, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op visit hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(uint32, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
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

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the BFS.
func WithOnVisit(fn func(node uint32, depth int) error) Option {
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
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: Depth[v] is v's distance (in edges) from the start, -1 if
//     unreached.
//   - Parent: Parent[v] is v's predecessor in the BFS tree, None for the
//     root and for unreached nodes.
type Result struct {
	Order  []uint32
	Depth  []int
	Parent []uint32
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest uint32) ([]uint32, error) {
	if int(dest) >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []uint32{}
	for cur := dest; ; {
		path = append(path, cur)
		prev := r.Parent[cur]
		if prev == None {
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
