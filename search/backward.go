package search

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/statespace"
)

// partial is a backward worklist entry: a reachable state together with the
// pieces that lead from it to an accepting state.
type partial struct {
	state  statespace.State
	suffix string
}

// backwardWalker encapsulates mutable backward-search state.
type backwardWalker struct {
	table *statespace.Table
	opts  Options
	r     *Reachable
	work  []partial
	paths []piece.Path
}

// Backward reconstructs every piece sequence that leads from r.Initial to
// one of r.Accepting while staying inside r.Visited. Each sequence is
// produced exactly once; the result is sorted.
//
// Returns ErrReachableNil when r is nil and ErrOptionViolation for invalid
// options.
func Backward(r *Reachable, opts ...Option) ([]piece.Path, error) {
	if r == nil {
		return nil, ErrReachableNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if r.Steps == 0 {
		return nil, nil
	}

	w := &backwardWalker{table: o.Table, opts: o, r: r}
	for _, s := range r.Accepting {
		w.work = append(w.work, partial{state: s}) // empty suffix
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	slices.Sort(w.paths)
	return w.paths, nil
}

func (w *backwardWalker) loop() error {
	for step := 1; len(w.work) > 0; step++ { // one piece undone per step
		next, done, err := w.stepAll()
		if err != nil {
			return err
		}
		w.work = next                      // entries still short of the initial state
		w.paths = append(w.paths, done...) // completed sequences
		w.opts.OnStep(Progress{
			Phase:    PhaseBackward,
			Step:     step,
			Frontier: len(next),
			Total:    len(w.paths),
		})
	}
	return nil
}

func (w *backwardWalker) stepAll() ([]partial, []piece.Path, error) {
	if w.opts.Workers < 2 || len(w.work) < 2*w.opts.Workers {
		next, done := w.step(w.work)
		return next, done, nil
	}
	chunks := split(w.work, w.opts.Workers)
	nexts := make([][]partial, len(chunks))    // per-chunk worklists
	dones := make([][]piece.Path, len(chunks)) // per-chunk completed paths
	var g errgroup.Group
	g.SetLimit(w.opts.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			nexts[i], dones[i] = w.step(chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	var next []partial
	var done []piece.Path
	for i := range chunks { // merge in chunk order
		next = append(next, nexts[i]...)
		done = append(done, dones[i]...)
	}
	return next, done, nil
}

// step undoes one piece for every entry. Predecessors equal to the initial
// state complete a path; other reachable predecessors stay on the worklist.
// The forward set only holds states on some path from the initial state, so
// every kept entry extends to at least one complete path.
func (w *backwardWalker) step(work []partial) ([]partial, []piece.Path) {
	var next []partial
	var done []piece.Path
	for _, e := range work {
		for _, p := range piece.All { // which piece was placed last?
			prev := w.table.Predecessor(e.state, p) // state before placing p
			suffix := string(rune(p)) + e.suffix    // prepend p
			if prev == w.r.Initial {                // full inventory: path complete
				done = append(done, piece.Path(suffix))
				continue
			}
			if w.r.Contains(prev) { // outside the forward set means no path leads here
				next = append(next, partial{state: prev, suffix: suffix})
			}
		}
	}
	return next, done
}

// Enumerate returns every valid piece sequence for inv: closed in position,
// heading and level, never below the starting level, within the search-time
// pillar budget. Sequences are neither canonicalized nor checked for
// self-intersection; see track.IsValid and canon.Canonicalize.
//
// An inventory with no pieces yields no sequences.
func Enumerate(inv piece.Inventory, opts ...Option) ([]piece.Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	opts = append(slices.Clip(opts), WithTable(o.Table))
	r, err := Forward(inv, opts...)
	if err != nil {
		return nil, err
	}
	return Backward(r, opts...)
}
