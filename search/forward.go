package search

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/statespace"
)

// forwardWalker encapsulates mutable forward-search state.
type forwardWalker struct {
	table  *statespace.Table
	opts   Options
	border []statespace.State
	res    *Reachable
}

// Forward computes every state reachable from the full inventory within
// exactly Pieces() steps, pruning states from which the loop can no longer
// be closed (see statespace.State.Feasible).
//
// Reconvergent prefixes that reach the same state are merged, so the cost
// is proportional to the number of distinct states, not the number of
// piece sequences.
//
// Returns piece.ErrNegativeInventory, statespace.ErrInventoryTooLarge or
// ErrOptionViolation for invalid input.
func Forward(inv piece.Inventory, opts ...Option) (*Reachable, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxPieces > 0 && inv.Pieces() > o.MaxPieces {
		return nil, fmt.Errorf("%w: %d pieces exceed the bound of %d",
			statespace.ErrInventoryTooLarge, inv.Pieces(), o.MaxPieces)
	}
	start, err := statespace.Initial(inv)
	if err != nil {
		return nil, err
	}

	w := &forwardWalker{
		table:  o.Table,
		opts:   o,
		border: []statespace.State{start},
		res: &Reachable{
			Initial: start,
			Visited: map[statespace.State]struct{}{start: {}},
			Steps:   inv.Pieces(),
		},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// loop advances the border one piece at a time until every piece is placed
// or no feasible state remains.
func (w *forwardWalker) loop() error {
	for step := 1; step <= w.res.Steps && len(w.border) > 0; step++ { // one piece per step
		candidates, err := w.expandAll() // feasible successors, duplicates included
		if err != nil {
			return err
		}
		next := make([]statespace.State, 0, len(candidates))
		for _, s := range candidates {
			if _, seen := w.res.Visited[s]; seen { // reconvergent prefix
				continue
			}
			w.res.Visited[s] = struct{}{} // mark visited
			next = append(next, s)        // expand on the next step
		}
		w.border = next // every state here has placed exactly step pieces
		w.opts.OnStep(Progress{
			Phase:    PhaseForward,
			Step:     step,
			Frontier: len(next),
			Total:    len(w.res.Visited),
		})
	}
	// only the final border has used every piece
	for _, s := range w.border {
		if s.Accepting() { // the loop closes
			w.res.Accepting = append(w.res.Accepting, s)
		}
	}
	return nil
}

// expandAll expands the whole border, fanning chunks out to workers when
// more than one is configured. Chunk results are concatenated in order so
// the outcome does not depend on scheduling.
func (w *forwardWalker) expandAll() ([]statespace.State, error) {
	if w.opts.Workers < 2 || len(w.border) < 2*w.opts.Workers { // too small to split
		return w.expand(w.border, nil), nil
	}
	chunks := split(w.border, w.opts.Workers)
	results := make([][]statespace.State, len(chunks)) // one slot per chunk, no locking
	var g errgroup.Group
	g.SetLimit(w.opts.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = w.expand(chunk, nil) // the table is read-only
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []statespace.State
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// expand appends every feasible successor of states to out.
func (w *forwardWalker) expand(states []statespace.State, out []statespace.State) []statespace.State {
	for _, s := range states {
		for _, p := range piece.All { // try every piece kind
			next, ok := w.table.Apply(s, p)
			if !ok || !next.Feasible() { // none left, or the loop can no longer close
				continue
			}
			out = append(out, next)
		}
	}
	return out
}

// split cuts s into at most n contiguous chunks of similar size.
func split[T any](s []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	size := (len(s) + n - 1) / n
	chunks := make([][]T, 0, n)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[start:end])
	}
	return chunks
}
