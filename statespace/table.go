package statespace

import (
	"github.com/jahodfra/IkeaTrainTrack/lattice"
	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// Transition describes the effect of one piece at one heading.
type Transition struct {
	Piece   piece.Piece
	Shift   lattice.Point
	Heading int8 // heading delta
	Level   int8 // level delta
	Cost    piece.Cost
}

// Table is the immutable pair of forward and inverse transition tables.
// Build it once with NewTable and pass it to the search functions.
type Table struct {
	forward [piece.Headings][piece.Count]Transition
	inverse [piece.Headings][piece.Count]Transition
}

// NewTable precomputes both tables.
// Complexity: O(8·5).
func NewTable() *Table {
	t := &Table{}
	for h := 0; h < piece.Headings; h++ {
		for i, p := range piece.All {
			t.forward[h][i] = forward(h, p)
		}
	}
	for h := 0; h < piece.Headings; h++ {
		for i, p := range piece.All {
			switch p {
			case piece.TurnRight:
				// ended at h, so it was placed at h-1
				t.inverse[h][i] = t.forward[piece.NormHeading(h-1)][i]
			case piece.TurnLeft:
				// ended at h, so it was placed at h+1
				t.inverse[h][i] = t.forward[piece.NormHeading(h+1)][i]
			default:
				t.inverse[h][i] = t.forward[h][i]
			}
		}
	}
	return t
}

func forward(h int, p piece.Piece) Transition {
	tr := Transition{
		Piece:   p,
		Heading: int8(p.HeadingDelta()),
		Level:   int8(p.LevelDelta()),
		Cost:    piece.BaseCost(p),
	}
	switch p {
	case piece.TurnRight:
		tr.Shift = lattice.Right(h)
	case piece.TurnLeft:
		tr.Shift = lattice.Left(h)
	default:
		tr.Shift = lattice.Straight(h)
	}
	return tr
}

// Forward returns the transition for placing p at heading h.
func (t *Table) Forward(h int, p piece.Piece) Transition {
	return t.forward[piece.NormHeading(h)][p.Index()]
}

// Inverse returns the transition that produced a state with heading h when
// the last placed piece was p.
func (t *Table) Inverse(h int, p piece.Piece) Transition {
	return t.inverse[piece.NormHeading(h)][p.Index()]
}

// Apply places p on s. It reports false when no piece of that kind is left;
// the returned state is not checked for feasibility.
func (t *Table) Apply(s State, p piece.Piece) (State, bool) {
	if !s.Available(p) {
		return State{}, false
	}
	tr := &t.forward[s.Heading][p.Index()]
	next := s
	next.Pos = s.Pos.Add(tr.Shift)
	next.Heading = int8(piece.NormHeading(int(s.Heading) + int(tr.Heading)))
	next.Level = s.Level + tr.Level
	next.Pillars = s.Pillars - int16(tr.Cost.At(int(s.Level)))
	consume(&next, p, -1)
	return next, true
}

// Predecessor undoes p, returning the unique state from which placing p
// yields s. The result may not be reachable; callers check membership.
func (t *Table) Predecessor(s State, p piece.Piece) State {
	tr := &t.inverse[s.Heading][p.Index()]
	prev := s
	prev.Pos = s.Pos.Sub(tr.Shift)
	prev.Heading = int8(piece.NormHeading(int(s.Heading) - int(tr.Heading)))
	prev.Level = s.Level - tr.Level
	// pillars are charged at the level the piece started from
	prev.Pillars = s.Pillars + int16(tr.Cost.At(int(prev.Level)))
	consume(&prev, p, 1)
	return prev
}

func consume(s *State, p piece.Piece, d int16) {
	switch p {
	case piece.Straight:
		s.Straight += d
	case piece.TurnRight, piece.TurnLeft:
		s.Turns += d
	case piece.Uphill:
		s.Ups += d
	case piece.Downhill:
		s.Downs += d
	}
}
