// Package track validates finished loops.
//
// A Track is a Path together with its derived per-index data (levels,
// headings, positions). Check decides whether a path can actually be built
// from an inventory and returns the first reason it cannot, in this order:
//
//  1. piece.ErrNegativeInventory: the inventory itself is malformed
//  2. piece.ErrInvalidPiece:      unknown symbol in the path
//  3. ErrEmptyPath
//  4. ErrUnbalancedClimb:         uphill and downhill counts differ
//  5. ErrHeadingNotClosed:        final heading is not 0 mod 8
//  6. ErrPositionNotClosed:       final position is not within
//     geometry.Tolerance of the origin
//  7. ErrPillarBudget:            geometry.CountPillars exceeds inv.Pillars
//  8. ErrSelfIntersection:        collision.SelfIntersects
//
// Piece counts are not compared with the inventory: the search only emits
// paths that use exactly the inventory, and the validity filter is about
// geometry and support.
//
// IsValid is Check(p, inv) == nil. Neither function panics on malformed
// input.
package track
