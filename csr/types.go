// Package csr declares the EdgeSource contract, build options, phases,
// and sentinel errors for CSR construction.
package csr

import (
	"errors"
	"fmt"
	"time"

	"github.com/dengelt/graph/edgelist"
)

// Sentinel errors for CSR construction.
var (
	// ErrNilSource is returned when a build is given a nil edge source.
	ErrNilSource = errors.New("csr: edge source is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("csr: invalid option supplied")
)

// EdgeSource is the read-only edge collection a build consumes. It must
// support concurrent traversal; edgelist.EdgeList is the in-memory
// implementation.
type EdgeSource interface {
	// MaxNodeID reports the largest node id any endpoint references.
	MaxNodeID() uint32

	// NodeCount reports the dense id space the edges span
	// (MaxNodeID()+1, or 0 when the source is empty).
	NodeCount() int

	// Degrees returns the per-node endpoint counts under dir,
	// as a slice of length nodeCount.
	Degrees(nodeCount int, dir edgelist.Direction) []uint32

	// ForEachParallel invokes fn for every (source, target) pair across
	// at most workers concurrent goroutines and returns once all have
	// finished. fn must be safe for concurrent invocation.
	ForEachParallel(workers int, fn func(source, target uint32))
}

// Phase identifies one stage of the construction pipeline, as reported to
// a phase hook.
type Phase string

const (
	// PhaseDegrees is the per-node degree counting stage.
	PhaseDegrees Phase = "degrees"
	// PhasePrefixSum is the exclusive scan producing the offset table.
	PhasePrefixSum Phase = "prefix_sum"
	// PhasePlacement is the lock-free parallel edge placement stage,
	// including the offset repair that follows it.
	PhasePlacement Phase = "placement"
	// PhaseSort is the per-node neighbor canonicalization stage.
	PhaseSort Phase = "sort"
)

// Option configures a build via functional arguments. An invalid Option
// (e.g. negative worker count) is recorded internally and surfaced as
// ErrOptionViolation when the build is invoked.
type Option func(*BuildOptions)

// BuildOptions holds tunable parameters for CSR construction.
type BuildOptions struct {
	// Workers caps the number of concurrent goroutines per parallel
	// phase. 0 selects runtime.GOMAXPROCS(0).
	Workers int

	// PhaseHook, if non-nil, receives the duration of each pipeline
	// phase as it completes. BuildDirected runs two pipelines
	// concurrently, so the hook must be safe for concurrent calls.
	PhaseHook func(phase Phase, took time.Duration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BuildOptions with sane defaults:
//   - Workers = 0 (GOMAXPROCS)
//   - no phase hook
//   - error channel clear.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Workers:   0,
		PhaseHook: nil,
		err:       nil,
	}
}

// WithWorkers caps the number of goroutines used by each parallel phase.
//
//	n > 0: use at most n workers
//	n == 0: explicit "use GOMAXPROCS"
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *BuildOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithPhaseHook registers a callback receiving each phase's duration.
func WithPhaseHook(fn func(phase Phase, took time.Duration)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.PhaseHook = fn
		}
	}
}

// observe reports a finished phase to the hook, if one is registered.
func (o *BuildOptions) observe(p Phase, since time.Time) {
	if o.PhaseHook != nil {
		o.PhaseHook(p, time.Since(since))
	}
}
