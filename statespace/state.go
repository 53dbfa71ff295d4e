// Package statespace models partially built tracks as search states and
// precomputes the per-heading transition tables used to move between them.
//
// A State is a fixed-width comparable value (20 bytes) so it can be used
// directly as a map key; the reachable set of a search is a plain
// map[State]struct{}.
//
// Table holds, for every heading 0..7 and every piece, the forward
// transition (what applying the piece does) and the inverse transition (how
// to undo it given only the resulting state). The inverse differs from the
// forward table for turns: a right turn that ends at heading h started at
// h-1, a left turn that ends at h started at h+1, and the chord depends on
// the starting heading.
package statespace

import (
	"errors"
	"fmt"
	"math"

	"github.com/jahodfra/IkeaTrainTrack/lattice"
	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// ErrInventoryTooLarge indicates an inventory that does not fit the compact
// state encoding or exceeds a caller-supplied bound.
var ErrInventoryTooLarge = errors.New("statespace: inventory too large")

// State is one node of the search graph: where the partially built track
// ends and what is left to place.
type State struct {
	Pos     lattice.Point
	Heading int8
	Level   int8

	Straight int16
	Turns    int16
	Ups      int16
	Downs    int16
	Pillars  int16
}

// Initial returns the state before any piece is placed: origin, heading 0,
// level 0 and the whole inventory remaining.
func Initial(inv piece.Inventory) (State, error) {
	if err := inv.Validate(); err != nil {
		return State{}, err
	}
	// positions are bounded by the piece count; levels by the ups
	if inv.Pieces() > math.MaxInt16 || inv.Pillars > math.MaxInt16 {
		return State{}, fmt.Errorf("%w: %s", ErrInventoryTooLarge, inv)
	}
	if inv.Ups > math.MaxInt8 {
		return State{}, fmt.Errorf("%w: %d ups", ErrInventoryTooLarge, inv.Ups)
	}
	return State{
		Straight: int16(inv.Straight),
		Turns:    int16(inv.Turns),
		Ups:      int16(inv.Ups),
		Downs:    int16(inv.Downs),
		Pillars:  int16(inv.Pillars),
	}, nil
}

// Remaining returns the number of pieces still to place.
func (s State) Remaining() int {
	return int(s.Straight) + int(s.Turns) + int(s.Ups) + int(s.Downs)
}

// Available reports whether p can still be placed.
func (s State) Available(p piece.Piece) bool {
	switch p {
	case piece.Straight:
		return s.Straight > 0
	case piece.TurnRight, piece.TurnLeft:
		return s.Turns > 0
	case piece.Uphill:
		return s.Ups > 0
	case piece.Downhill:
		return s.Downs > 0
	}
	return false
}

// Accepting reports whether s closes the loop: every piece placed, back at
// the origin with heading 0 and level 0, pillar budget not exceeded.
func (s State) Accepting() bool {
	return s.Remaining() == 0 && s.Pillars >= 0 &&
		s.Pos.IsZero() && s.Heading == 0 && s.Level == 0
}

// Feasible reports whether the loop can still be closed from s. A state
// failing any of these checks can never reach an accepting state:
//
//   - pillars < 0                          budget exceeded
//   - level < 0                            below the starting level
//   - downs < level                        cannot descend back to 0
//   - pillars < level                      cannot support the way down
//   - turns < heading && turns < 8-heading cannot turn back to heading 0
//   - Chebyshev(pos) > remaining pieces    too far to return in time
func (s State) Feasible() bool {
	level := int16(s.Level)
	switch {
	case s.Pillars < 0, level < 0:
		return false
	case s.Downs < level, s.Pillars < level:
		return false
	}
	a := int16(s.Heading)
	if s.Turns < a && s.Turns < 8-a {
		return false
	}
	return s.Pos.Chebyshev() <= s.Remaining()
}

// Inventory returns the remaining counts as an Inventory.
func (s State) Inventory() piece.Inventory {
	return piece.Inventory{
		Straight: int(s.Straight),
		Turns:    int(s.Turns),
		Ups:      int(s.Ups),
		Downs:    int(s.Downs),
		Pillars:  int(s.Pillars),
	}
}

func (s State) String() string {
	return fmt.Sprintf("pos=(%d,%d,%d,%d) h=%d lvl=%d rem=%s",
		s.Pos.AX, s.Pos.BX, s.Pos.AY, s.Pos.BY, s.Heading, s.Level, s.Inventory())
}
