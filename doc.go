// Package ikeatraintrack enumerates the closed loops that can be built from
// a box of wooden train track pieces.
//
// What
//
//	A track is a circular sequence of five pieces:
//		S  straight, length 1
//		R  45° turn to the right
//		L  45° turn to the left
//		U  uphill ramp, one level up
//		D  downhill ramp, one level down
//	Raised track rests on pillars, and the supply of pillars is limited.
//	Given an inventory (how many of each piece, how many pillars) the module
//	lists every distinct loop that uses all pieces, closes on itself, never
//	runs into itself and can be supported.
//
// Pipeline
//
//	inventory
//	  → search.Forward     reachable states, pruned
//	  → search.Backward    raw piece sequences
//	  → canon.Unique       one representative per symmetry class
//	  → track.Filter       closure, pillars, self-intersection
//	  → simplify.Minimal   drop layouts padded with redundant pieces
//
// Packages
//
//	piece/       piece symbols, paths, inventories, pillar costs
//	lattice/     exact positions in the ring generated by √2
//	statespace/  search states and transition tables
//	search/      forward/backward enumeration (optionally parallel)
//	canon/       canonical form under shift, mirror and reversal
//	geometry/    heights, headings, float positions, pillar count
//	collision/   sweep-line self-intersection test
//	track/       validity filter
//	simplify/    reducibility rewrites
//	solver/      the pipeline with logging and caching
//	cache/       buntdb result store
//	config/      YAML settings
//	cmd/trackgen command-line front end
//
// Usage
//
//	res, err := solver.Solve(ctx, piece.Inventory{Straight: 4, Turns: 12, Ups: 2, Downs: 2, Pillars: 4})
//	if err != nil {
//	    // piece.ErrNegativeInventory, statespace.ErrInventoryTooLarge, ...
//	}
//	for _, p := range res.Minimal {
//	    fmt.Println(p)
//	}
package ikeatraintrack
