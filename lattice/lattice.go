// Package lattice represents positions on the track plane exactly.
//
// A straight piece has length 1 and a turn piece has chord sqrt(2-sqrt(2)),
// so positions live in the ring generated by sqrt(2). Each axis is stored as
// two integers (A, B) in the basis
//
//	u = sqrt(2)/2,  v = 1 - sqrt(2)/2      (u + v = 1)
//
// in which every piece displacement has components in {-1, 0, 1}. Because u
// and v are linearly independent over the rationals, two positions are equal
// exactly when their integer components are equal; no tolerance is needed.
//
// Headings grow clockwise: heading 0 points along +x, heading 2 along -y.
package lattice

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// U is the world length of one A unit.
	U = math.Sqrt2 / 2
	// V is the world length of one B unit.
	V = 1 - math.Sqrt2/2
)

// Point is an exact lattice position: x = AX·U + BX·V, y = AY·U + BY·V.
type Point struct {
	AX, BX, AY, BY int16
}

// Origin is the zero position.
var Origin Point

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.AX + q.AX, p.BX + q.BX, p.AY + q.AY, p.BY + q.BY}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.AX - q.AX, p.BX - q.BX, p.AY - q.AY, p.BY - q.BY}
}

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.AX, -p.BX, -p.AY, -p.BY} }

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool { return p == Origin }

// Chebyshev returns the largest absolute integer component. A single piece
// moves every component by at most one, so this is a lower bound on the
// number of pieces needed to return to the origin.
func (p Point) Chebyshev() int {
	m := abs(p.AX)
	for _, c := range [...]int16{p.BX, p.AY, p.BY} {
		if a := abs(c); a > m {
			m = a
		}
	}
	return m
}

// World converts p to floating point world coordinates.
func (p Point) World() r2.Vec {
	return r2.Vec{
		X: float64(p.AX)*U + float64(p.BX)*V,
		Y: float64(p.AY)*U + float64(p.BY)*V,
	}
}

func abs(c int16) int {
	if c < 0 {
		return -int(c)
	}
	return int(c)
}
