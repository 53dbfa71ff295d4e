package piece

import (
	"fmt"
	"strings"
)

// Path is a closed sequence of pieces in its symbol form. Index arithmetic
// wraps modulo the length.
type Path string

// ParsePath validates s and returns it as a Path.
func ParsePath(s string) (Path, error) {
	p := Path(strings.TrimSpace(s))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// MustParsePath is ParsePath that panics on error. For tests and constants.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate returns ErrInvalidPiece for the first unknown symbol.
func (p Path) Validate() error {
	for i := 0; i < len(p); i++ {
		if !Piece(p[i]).Valid() {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidPiece, p[i], i)
		}
	}
	return nil
}

// MustValidate panics with the error of Validate. Functions that take a
// Path without returning an error call it on entry.
func (p Path) MustValidate() {
	if err := p.Validate(); err != nil {
		panic(err)
	}
}

// Len returns the number of pieces.
func (p Path) Len() int { return len(p) }

// At returns the piece at i, wrapping circularly (negative i allowed).
// It panics on an empty path.
func (p Path) At(i int) Piece {
	n := len(p)
	if n == 0 {
		panic("piece: At on an empty path")
	}
	i %= n
	if i < 0 {
		i += n
	}
	return Piece(p[i])
}

// Pieces returns the path as a slice.
func (p Path) Pieces() []Piece {
	out := make([]Piece, len(p))
	for i := range out {
		out[i] = Piece(p[i])
	}
	return out
}

// Count returns how many times piece q occurs.
func (p Path) Count(q Piece) int { return strings.Count(string(p), string(rune(q))) }

// Turns returns the number of turn pieces of either direction.
func (p Path) Turns() int { return p.Count(TurnRight) + p.Count(TurnLeft) }

func (p Path) String() string { return string(p) }

// FromPieces builds a Path from a piece slice.
func FromPieces(ps []Piece) Path {
	var b strings.Builder
	b.Grow(len(ps))
	for _, q := range ps {
		b.WriteByte(byte(q))
	}
	return Path(b.String())
}
