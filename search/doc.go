// Package search enumerates every closed piece sequence an inventory can
// build, using a two-phase reachability algorithm over statespace.State.
//
// What
//
//   - Forward: breadth-first dynamic program over exactly N = Pieces() steps.
//     Every step expands the border by every available piece and discards
//     successors that can no longer close the loop (State.Feasible). All
//     survivors of all depths are merged into one visited set.
//   - Backward: starting from the accepting states, undo one piece at a time
//     through the inverse transition table, keeping a predecessor only if the
//     forward pass visited it. A branch completes when it reaches the
//     initial state; the accumulated pieces form one sequence.
//   - Enumerate: Forward followed by Backward.
//
// Why
//
//	Walking forward and emitting strings is exponential in the number of
//	sequences. Merging reconvergent prefixes makes the forward pass
//	polynomial in the number of distinct states, and the visited set lets
//	the backward pass explore only predecessors already proven reachable.
//
// Options
//
//   - WithWorkers(n):   expand each step on n goroutines (errgroup). Chunk
//     results are merged in order, so the output is identical to a
//     sequential run.
//   - WithMaxPieces(n): reject larger inventories with
//     statespace.ErrInventoryTooLarge.
//   - WithOnStep(fn):   progress hook called after every step of both phases.
//   - WithTable(t):     reuse a prebuilt transition table.
//
// Complexity (R = reachable states, P = emitted sequences, N = pieces)
//
//   - Forward:  O(5·R) time, O(R) memory.
//   - Backward: O(5·N·P) time in the worst case.
//
// Usage
//
//	paths, err := search.Enumerate(piece.Inventory{Turns: 16})
//	if err != nil {
//	    // piece.ErrNegativeInventory, statespace.ErrInventoryTooLarge or
//	    // ErrOptionViolation
//	}
//	for _, p := range paths {
//	    fmt.Println(p)
//	}
package search
