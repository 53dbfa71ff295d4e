package piece

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for piece and inventory handling.
var (
	// ErrInvalidPiece indicates a symbol outside {S,R,L,U,D}.
	ErrInvalidPiece = errors.New("piece: invalid piece symbol")

	// ErrNegativeInventory indicates an inventory field below zero.
	ErrNegativeInventory = errors.New("piece: negative inventory")
)

// Piece is a single track piece, stored as its symbol byte.
// Symbol byte order (D < L < R < S < U) is the canonical ordering.
type Piece byte

const (
	Straight  Piece = 'S'
	TurnRight Piece = 'R'
	TurnLeft  Piece = 'L'
	Uphill    Piece = 'U'
	Downhill  Piece = 'D'
)

// All lists every piece in a fixed order used by the transition tables.
var All = [...]Piece{Straight, TurnRight, TurnLeft, Uphill, Downhill}

// Count is the number of distinct pieces.
const Count = len(All)

const (
	// StraightSize is the length of a straight piece in world units.
	StraightSize = 1.0
	// TurnSize is the chord length of a turn piece: 2·sin(22.5°).
	TurnSize = 0.7653668647301796 // math.Sqrt(2 - math.Sqrt2)
)

// Headings is the number of discrete headings (45° steps).
const Headings = 8

// Parse converts a symbol byte into a Piece.
func Parse(b byte) (Piece, error) {
	switch p := Piece(b); p {
	case Straight, TurnRight, TurnLeft, Uphill, Downhill:
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPiece, b)
}

// Index returns the position of p in All, or -1 for an unknown piece.
func (p Piece) Index() int {
	switch p {
	case Straight:
		return 0
	case TurnRight:
		return 1
	case TurnLeft:
		return 2
	case Uphill:
		return 3
	case Downhill:
		return 4
	}
	return -1
}

// Valid reports whether p is one of the five pieces.
func (p Piece) Valid() bool { return p.Index() >= 0 }

// mustBeValid panics with ErrInvalidPiece for an unknown symbol. The
// geometric accessors are only defined for the five pieces.
func (p Piece) mustBeValid() {
	if !p.Valid() {
		panic(fmt.Errorf("%w: %q", ErrInvalidPiece, byte(p)))
	}
}

func (p Piece) String() string { return string(rune(p)) }

// IsTurn reports whether p is TurnRight or TurnLeft.
func (p Piece) IsTurn() bool { return p == TurnRight || p == TurnLeft }

// HeadingDelta is +1 for TurnRight, -1 for TurnLeft and 0 otherwise.
// It panics with ErrInvalidPiece for an unknown piece.
func (p Piece) HeadingDelta() int {
	p.mustBeValid()
	switch p {
	case TurnRight:
		return 1
	case TurnLeft:
		return -1
	}
	return 0
}

// LevelDelta is +1 for Uphill, -1 for Downhill and 0 otherwise.
// It panics with ErrInvalidPiece for an unknown piece.
func (p Piece) LevelDelta() int {
	p.mustBeValid()
	switch p {
	case Uphill:
		return 1
	case Downhill:
		return -1
	}
	return 0
}

// Mirror swaps the turn direction and leaves other pieces unchanged.
func (p Piece) Mirror() Piece {
	switch p {
	case TurnRight:
		return TurnLeft
	case TurnLeft:
		return TurnRight
	}
	return p
}

// Length is the chord length of p in world units.
// It panics with ErrInvalidPiece for an unknown piece.
func (p Piece) Length() float64 {
	p.mustBeValid()
	if p.IsTurn() {
		return TurnSize
	}
	return StraightSize
}

// ChordAngle returns the direction of p's chord in radians when p starts at
// heading h. Angles grow clockwise with heading; turns bend half a step.
// It panics with ErrInvalidPiece for an unknown piece.
func (p Piece) ChordAngle(h int) float64 {
	p.mustBeValid()
	a := float64(h)
	switch p {
	case TurnRight:
		a += 0.5
	case TurnLeft:
		a -= 0.5
	}
	return a * math.Pi / 4
}

// NormHeading reduces h into 0..7.
func NormHeading(h int) int {
	h %= Headings
	if h < 0 {
		h += Headings
	}
	return h
}
