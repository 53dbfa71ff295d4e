package lattice

// straightShift[h] is the displacement of a unit straight at heading h.
var straightShift = [8]Point{
	{1, 1, 0, 0},
	{1, 0, -1, 0},
	{0, 0, -1, -1},
	{-1, 0, -1, 0},
	{-1, -1, 0, 0},
	{-1, 0, 1, 0},
	{0, 0, 1, 1},
	{1, 0, 1, 0},
}

// chordShift[h] is the chord of a turn whose chord direction is h + 1/2,
// i.e. a right turn starting at h or a left turn starting at h + 1.
var chordShift = [8]Point{
	{1, 0, 0, -1},
	{0, 1, -1, 0},
	{0, -1, -1, 0},
	{-1, 0, 0, -1},
	{-1, 0, 0, 1},
	{0, -1, 1, 0},
	{0, 1, 1, 0},
	{1, 0, 0, 1},
}

// Straight returns the displacement of a straight (or ramp) piece placed at
// heading h.
func Straight(h int) Point { return straightShift[norm(h)] }

// Right returns the displacement of a right turn starting at heading h.
func Right(h int) Point { return chordShift[norm(h)] }

// Left returns the displacement of a left turn starting at heading h. Its
// chord is the right-turn chord of heading h-1.
func Left(h int) Point { return chordShift[norm(h-1)] }

func norm(h int) int {
	h %= 8
	if h < 0 {
		h += 8
	}
	return h
}
