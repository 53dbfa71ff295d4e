// Package collision tests whether a finished track runs into itself.
//
// Pieces are grouped by height level; pieces on different levels never
// collide. A straight or turn piece contributes its chord on its level. A
// ramp rests on both levels it connects: it contributes the first 80% of its
// chord on the lower end's level and the last 80% on the upper end's level.
//
// Within a level, a left-to-right sweep over segment x-extents tests every
// newly opened segment against the segments still open. Segments of pieces
// that follow each other on the loop share an endpoint and are never
// reported.
package collision

import (
	"cmp"
	"maps"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jahodfra/IkeaTrainTrack/geometry"
	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// Ramp split points along a ramp's chord.
const (
	RampLow  = 0.2
	RampHigh = 0.8
)

// Segment is a straight part of one piece's chord.
type Segment struct {
	Index int // originating piece
	Start r2.Vec
	End   r2.Vec
}

// pointOn returns the point at fraction f from a to b.
func pointOn(a, b r2.Vec, f float64) r2.Vec {
	return r2.Add(a, r2.Scale(f, r2.Sub(b, a)))
}

// Segments groups the chords of p by level. pos and levels are the per-index
// positions and heights of p (see geometry.Positions, geometry.Heights).
func Segments(p piece.Path, pos []r2.Vec, levels []int) map[int][]Segment {
	out := make(map[int][]Segment)
	for i := 0; i < p.Len(); i++ {
		start, end, level := pos[i], pos[i+1], levels[i]
		switch q := p.At(i); q {
		case piece.Uphill, piece.Downhill:
			out[level] = append(out[level], Segment{i, start, pointOn(start, end, RampHigh)})
			next := level + q.LevelDelta()
			out[next] = append(out[next], Segment{i, pointOn(start, end, RampLow), end})
		default:
			out[level] = append(out[level], Segment{i, start, end})
		}
	}
	return out
}

// Adjacent reports whether pieces i and j follow each other on a loop of n
// pieces.
func Adjacent(i, j, n int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d == 1 || d == n-1
}

// Intersects reports whether segments a and b share a point, within
// geometry.Tolerance. Parallel segments intersect only when they lie on one
// line and overlap.
func Intersects(a, b Segment) bool {
	da := r2.Sub(a.End, a.Start)
	db := r2.Sub(b.End, b.Start)
	d := r2.Sub(b.Start, a.Start)
	den := r2.Cross(da, db)
	if geometry.AlmostZero(den) {
		return collinearOverlap(da, d, r2.Sub(b.End, a.Start))
	}
	// a.Start + s·da = b.Start + t·db
	s := r2.Cross(d, db) / den
	t := r2.Cross(d, da) / den
	es := geometry.Tolerance / r2.Norm(da)
	et := geometry.Tolerance / r2.Norm(db)
	return -es <= s && s <= 1+es && -et <= t && t <= 1+et
}

// collinearOverlap tests two parallel segments: a spans 0..da, b spans
// b0..b1, all relative to a's start.
func collinearOverlap(da, b0, b1 r2.Vec) bool {
	la := r2.Norm(da)
	if la == 0 {
		return geometry.AlmostZero(r2.Norm(b0))
	}
	// distance of b's start from a's line
	if !geometry.AlmostZero(r2.Cross(da, b0) / la) {
		return false
	}
	p0 := r2.Dot(b0, da) / la
	p1 := r2.Dot(b1, da) / la
	lo, hi := min(p0, p1), max(p0, p1)
	return hi >= -geometry.Tolerance && lo <= la+geometry.Tolerance
}

type event struct {
	x    float64
	open bool
	seg  int
}

// sweep returns the first intersecting pair among segs, skipping pairs of
// adjacent pieces on a loop of n pieces.
func sweep(segs []Segment, n int) (Segment, Segment, bool) {
	events := make([]event, 0, 2*len(segs))
	for i, s := range segs {
		lo, hi := min(s.Start.X, s.End.X), max(s.Start.X, s.End.X)
		events = append(events,
			event{x: lo - geometry.Tolerance, open: true, seg: i},
			event{x: hi + geometry.Tolerance, seg: i})
	}
	slices.SortFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		switch {
		case a.open && !b.open:
			return -1
		case !a.open && b.open:
			return 1
		}
		return cmp.Compare(a.seg, b.seg)
	})

	var open []int
	for _, e := range events {
		if !e.open {
			open = slices.DeleteFunc(open, func(i int) bool { return i == e.seg })
			continue
		}
		cur := segs[e.seg]
		for _, i := range open {
			other := segs[i]
			if other.Index == cur.Index || Adjacent(other.Index, cur.Index, n) {
				continue
			}
			if Intersects(cur, other) {
				return other, cur, true
			}
		}
		open = append(open, e.seg)
	}
	return Segment{}, Segment{}, false
}

// FirstIntersection returns a colliding pair of segments of p, checking
// levels in increasing order.
func FirstIntersection(p piece.Path) (Segment, Segment, bool) {
	groups := Segments(p, geometry.Positions(p), geometry.Heights(p))
	for _, l := range slices.Sorted(maps.Keys(groups)) {
		if a, b, ok := sweep(groups[l], p.Len()); ok {
			return a, b, true
		}
	}
	return Segment{}, Segment{}, false
}

// SelfIntersects reports whether any two non-adjacent pieces of p collide.
func SelfIntersects(p piece.Path) bool {
	_, _, ok := FirstIntersection(p)
	return ok
}
