package search

import (
	"errors"
	"fmt"

	"github.com/jahodfra/IkeaTrainTrack/statespace"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrReachableNil is returned when Backward receives a nil reachable set.
	ErrReachableNil = errors.New("search: reachable set is nil")
)

// Phase identifies which half of the search reported progress.
type Phase int

const (
	// PhaseForward is the forward reachability pass.
	PhaseForward Phase = iota
	// PhaseBackward is the backward reconstruction pass.
	PhaseBackward
)

func (p Phase) String() string {
	if p == PhaseBackward {
		return "backward"
	}
	return "forward"
}

// Progress is passed to the OnStep hook after every search step.
type Progress struct {
	Phase Phase
	// Step counts pieces placed (forward) or pieces undone (backward).
	Step int
	// Frontier is the size of the border or backward worklist after the step.
	Frontier int
	// Total is the number of visited states (forward) or emitted paths
	// (backward) so far.
	Total int
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search runs.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Workers is the number of goroutines expanding a step. Values below 2
	// run the search on the calling goroutine.
	Workers int

	// MaxPieces, if > 0, rejects inventories with more placeable pieces
	// with statespace.ErrInventoryTooLarge.
	MaxPieces int

	// OnStep is called after every forward and backward step.
	OnStep func(Progress)

	// Table is the transition table; nil builds a fresh one.
	Table *statespace.Table

	err error
}

// DefaultOptions returns Options with:
//   - a single worker
//   - no inventory bound
//   - a no-op OnStep hook
//   - no prebuilt table.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		OnStep:  func(Progress) {},
	}
}

// WithWorkers sets the number of parallel workers.
//
//	n > 1:  parallel expansion with n goroutines
//	n 0, 1: sequential
//	n < 0:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxPieces bounds the number of placeable pieces. 0 disables the bound.
func WithMaxPieces(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPieces cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPieces = n
	}
}

// WithOnStep registers a progress callback.
func WithOnStep(fn func(Progress)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithTable reuses a prebuilt transition table.
func WithTable(t *statespace.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Table == nil {
		o.Table = statespace.NewTable()
	}
	return o, nil
}

// Reachable is the outcome of the forward pass.
type Reachable struct {
	// Initial is the full-inventory start state.
	Initial statespace.State

	// Visited holds every state reached at any depth, Initial included.
	Visited map[statespace.State]struct{}

	// Accepting lists the visited states that close the loop.
	Accepting []statespace.State

	// Steps is the number of pieces in a complete loop.
	Steps int
}

// Contains reports whether s was reached by the forward pass.
func (r *Reachable) Contains(s statespace.State) bool {
	_, ok := r.Visited[s]
	return ok
}

// Len returns the number of visited states.
func (r *Reachable) Len() int { return len(r.Visited) }
