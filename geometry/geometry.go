// Package geometry derives the per-index data of a finished track: height
// levels, headings, floating point positions and pillar consumption.
//
// Positions use world units (straight piece = 1) with headings growing
// clockwise, matching package lattice. Unlike the search, this package works
// in floating point and compares with Tolerance.
//
// Paths must hold only the five piece symbols; every function panics with
// piece.ErrInvalidPiece otherwise.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// Tolerance is the absolute tolerance, in world units, for closure and
// coincidence checks.
const Tolerance = 1e-3

// Heights returns len(p)+1 levels: Heights[i] is the level before piece i,
// the last entry the level after the whole path. Levels start at 0 and are
// shifted so that the minimum is 0.
func Heights(p piece.Path) []int {
	p.MustValidate()
	out := make([]int, p.Len()+1)
	lowest := 0
	for i := 0; i < p.Len(); i++ {
		out[i+1] = out[i] + p.At(i).LevelDelta()
		lowest = min(lowest, out[i+1])
	}
	for i := range out {
		out[i] -= lowest
	}
	return out
}

// Headings returns len(p)+1 headings in 0..7: Headings[i] is the heading
// before piece i, the last entry the heading after the whole path.
func Headings(p piece.Path) []int {
	p.MustValidate()
	out := make([]int, p.Len()+1)
	for i := 0; i < p.Len(); i++ {
		out[i+1] = piece.NormHeading(out[i] + p.At(i).HeadingDelta())
	}
	return out
}

// Chord returns the displacement of q placed at heading h.
func Chord(q piece.Piece, h int) r2.Vec {
	a := q.ChordAngle(h)
	return r2.Scale(q.Length(), r2.Vec{X: math.Cos(a), Y: -math.Sin(a)})
}

// Positions returns len(p)+1 points: Positions[i] is where piece i starts,
// the last entry where the whole path ends. The walk starts at the origin
// with heading 0.
func Positions(p piece.Path) []r2.Vec {
	p.MustValidate()
	out := make([]r2.Vec, p.Len()+1)
	h := 0
	for i := 0; i < p.Len(); i++ {
		q := p.At(i)
		out[i+1] = r2.Add(out[i], Chord(q, h))
		h += q.HeadingDelta()
	}
	return out
}

// AlmostZero reports whether |v| <= Tolerance.
func AlmostZero(v float64) bool { return scalar.EqualWithinAbs(v, 0, Tolerance) }

// AlmostEqual reports whether a and b agree within Tolerance on both axes.
func AlmostEqual(a, b r2.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, Tolerance) && scalar.EqualWithinAbs(a.Y, b.Y, Tolerance)
}

// CountPillars returns the pillars a finished path needs: the sum of
// piece.PillarCost over every piece, at its starting level and given the
// piece before it (circularly).
func CountPillars(p piece.Path) int {
	levels := Heights(p) // validates p
	total := 0
	for i := 0; i < p.Len(); i++ {
		total += piece.PillarCost(p.At(i), p.At(i-1), levels[i])
	}
	return total
}
