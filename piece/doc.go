// Package piece defines the track piece model: the five piece symbols,
// circular piece sequences (Path), the piece/pillar budget (Inventory)
// and the per-piece heading, level and pillar-cost effects.
//
// What:
//
//   - Piece: Straight 'S', TurnRight 'R', TurnLeft 'L', Uphill 'U', Downhill 'D'.
//   - Path: a string of piece symbols read circularly; the canonical string
//     form is the interchange representation used by every other package.
//   - Inventory: remaining (or supplied) counts of straights, turns, ups,
//     downs and support pillars.
//   - Cost: the linear pillar cost of a piece as a function of the level it
//     starts from; PillarCost adds the shared-pillar rule for downhills.
//
// Geometry constants:
//
//   - StraightSize = 1 (world units).
//   - TurnSize = sqrt(2 - sqrt(2)), the chord of a 45° arc of unit radius.
//
// Errors:
//
//   - ErrInvalidPiece       symbol outside {S,R,L,U,D}
//   - ErrNegativeInventory  an inventory field below zero
//
// ParsePath and Path.Validate return ErrInvalidPiece. The per-piece
// accessors and the packages built on Path (canon, geometry, collision,
// simplify) panic with it instead: an unchecked symbol is a caller bug, so
// untrusted input goes through ParsePath first.
package piece
