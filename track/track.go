package track

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jahodfra/IkeaTrainTrack/canon"
	"github.com/jahodfra/IkeaTrainTrack/collision"
	"github.com/jahodfra/IkeaTrainTrack/geometry"
	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// Sentinel errors returned by Check.
var (
	ErrEmptyPath         = errors.New("track: empty path")
	ErrUnbalancedClimb   = errors.New("track: uphill and downhill counts differ")
	ErrHeadingNotClosed  = errors.New("track: final heading is not 0")
	ErrPositionNotClosed = errors.New("track: loop does not return to the origin")
	ErrPillarBudget      = errors.New("track: not enough pillars")
	ErrSelfIntersection  = errors.New("track: track intersects itself")
)

// Track is a path with its derived geometry. It is immutable once built.
type Track struct {
	Path      piece.Path
	Levels    []int    // level before each piece, plus the final level
	Headings  []int    // heading before each piece, plus the final heading
	Positions []r2.Vec // start of each piece, plus the final position
}

// New validates the symbols of p and derives its geometry.
func New(p piece.Path) (*Track, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return build(p), nil
}

// build derives the geometry of a validated path.
func build(p piece.Path) *Track {
	return &Track{
		Path:      p,
		Levels:    geometry.Heights(p),
		Headings:  geometry.Headings(p),
		Positions: geometry.Positions(p),
	}
}

// Canonical returns the track of the canonical form of t's path.
func (t *Track) Canonical() *Track {
	c := canon.Canonicalize(t.Path)
	if c == t.Path {
		return t
	}
	return build(c) // a canonical form uses the same symbols as t.Path
}

// Equal reports whether t and o describe the same layout.
func (t *Track) Equal(o *Track) bool { return canon.Equivalent(t.Path, o.Path) }

// Pillars returns the pillars t needs.
func (t *Track) Pillars() int { return geometry.CountPillars(t.Path) }

// End returns the position after the last piece.
func (t *Track) End() r2.Vec { return t.Positions[len(t.Positions)-1] }

// Check returns nil if p is a buildable closed loop within the pillar budget
// of inv, or the first failing reason (see package doc).
func Check(p piece.Path, inv piece.Inventory) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	t, err := New(p)
	if err != nil {
		return err
	}
	return t.Check(inv)
}

// IsValid reports whether Check(p, inv) returns nil.
func IsValid(p piece.Path, inv piece.Inventory) bool { return Check(p, inv) == nil }

// Check runs the closure, support and collision stages on t.
func (t *Track) Check(inv piece.Inventory) error {
	// Stage 1: shape of the sequence.
	if t.Path.Len() == 0 {
		return ErrEmptyPath
	}
	if u, d := t.Path.Count(piece.Uphill), t.Path.Count(piece.Downhill); u != d {
		return fmt.Errorf("%w: %d up, %d down", ErrUnbalancedClimb, u, d)
	}

	// Stage 2: closure.
	if h := t.Headings[len(t.Headings)-1]; h != 0 {
		return fmt.Errorf("%w: ends at heading %d", ErrHeadingNotClosed, h)
	}
	if end := t.End(); !geometry.AlmostEqual(end, r2.Vec{}) {
		return fmt.Errorf("%w: ends at (%.4f, %.4f)", ErrPositionNotClosed, end.X, end.Y)
	}

	// Stage 3: support.
	if need := t.Pillars(); need > inv.Pillars {
		return fmt.Errorf("%w: need %d, have %d", ErrPillarBudget, need, inv.Pillars)
	}

	// Stage 4: collision.
	if a, b, hit := collision.FirstIntersection(t.Path); hit {
		return fmt.Errorf("%w: pieces %d and %d", ErrSelfIntersection, a.Index, b.Index)
	}
	return nil
}

// Stats summarizes what a track consumes.
type Stats struct {
	piece.Inventory
	Length   int
	MaxLevel int
}

// Stats returns piece counts, pillars and the highest level of t.
func (t *Track) Stats() Stats {
	inv := piece.Of(t.Path)
	inv.Pillars = t.Pillars()
	return Stats{Inventory: inv, Length: t.Path.Len(), MaxLevel: slices.Max(t.Levels)}
}

// Filter returns the members of paths that are valid for inv, in order.
func Filter(paths []piece.Path, inv piece.Inventory) []piece.Path {
	var out []piece.Path
	for _, p := range paths {
		if IsValid(p, inv) {
			out = append(out, p)
		}
	}
	return out
}
