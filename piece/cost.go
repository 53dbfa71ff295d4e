package piece

// Cost is the linear pillar cost PerLevel·level + Offset of a piece placed
// at a given starting level.
type Cost struct {
	PerLevel int
	Offset   int
}

// At evaluates the cost at level.
func (c Cost) At(level int) int { return c.PerLevel*level + c.Offset }

// BaseCost returns the search-time pillar cost of p. It omits the
// shared-pillar surcharge of a downhill, which depends on the previous
// piece and is therefore only known once the whole path is fixed.
//
//	S, R, L: level
//	U:       2·level
//	D:       level - 1
//
// It panics with ErrInvalidPiece for an unknown piece.
func BaseCost(p Piece) Cost {
	p.mustBeValid()
	switch p {
	case Uphill:
		return Cost{PerLevel: 2}
	case Downhill:
		return Cost{PerLevel: 1, Offset: -1}
	}
	return Cost{PerLevel: 1}
}

// PillarCost returns the full pillar cost of p starting at level, given the
// piece placed immediately before it. A downhill not preceded by an uphill
// pays level-1 twice; an uphill right before it lets one pillar hold both
// ramps.
//
// The surcharge is an approximation: a descent passing beneath another
// elevated segment is not modelled.
func PillarCost(p, prev Piece, level int) int {
	prev.mustBeValid()
	c := BaseCost(p).At(level)
	if p == Downhill && prev != Uphill {
		c += level - 1
	}
	return c
}
