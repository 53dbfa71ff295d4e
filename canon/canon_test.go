package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahodfra/IkeaTrainTrack/canon"
	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/search"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in, want piece.Path
	}{
		{"", ""},
		{"RRRRRRRR", "LLLLLLLL"},
		{"LLLLLLLL", "LLLLLLLL"},
		{"LLRRRRRRRRLLLLLL", "LLLLLLLLRRRRRRRR"},
		{"SRRRRSRRRR", "LLLLSLLLLS"},
		{"RRRRURRRRD", "DLLLLULLLL"},
		{"SSULSU", "LSUSSU"},
		{"RLRRRRLRRRRR", "LLLLLLRLLLLR"},
		{"DLLLRLUDLSLLLSRLUL", "DLLLRLUDLSLLLSRLUL"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, canon.Canonicalize(tc.in), "Canonicalize(%q)", tc.in)
	}
}

// TestCanonicalize_MatchesBruteForce compares the Booth-based form with the
// minimum over all images.
func TestCanonicalize_MatchesBruteForce(t *testing.T) {
	for _, p := range []piece.Path{"SSULSU", "USLSSU", "RRLSRDUL", "SDSUSDSU", "LRLRLR", "U"} {
		images := canon.Images(p)
		require.Len(t, images, 4*p.Len())
		least := images[0]
		for _, img := range images {
			if img < least {
				least = img
			}
		}
		assert.Equal(t, least, canon.Canonicalize(p), "%s", p)
	}
}

// TestCanonicalize_Invariance checks that every image has the same form and
// that the form is a fixed point.
func TestCanonicalize_Invariance(t *testing.T) {
	p := piece.Path("RRSLURRDLS")
	c := canon.Canonicalize(p)
	assert.True(t, canon.IsCanonical(c))
	assert.Equal(t, c, canon.Canonicalize(c))
	for _, img := range canon.Images(p) {
		assert.Equal(t, c, canon.Canonicalize(img), "image %s", img)
		assert.True(t, canon.Equivalent(p, img))
	}
	assert.False(t, canon.Equivalent("RRRRRRRR", "RRRRRRRRS"))
	assert.False(t, canon.Equivalent("SRRRRSRRRR", "SSRRRRRRRR"))
}

func TestMirrorReverseShift(t *testing.T) {
	assert.Equal(t, piece.Path("LRSUD"), canon.Mirror("RLSUD"))
	assert.Equal(t, piece.Path("DUSLR"), canon.Reverse("RLSUD"))
	assert.Equal(t, piece.Path("SUDRL"), canon.Shift("RLSUD", 2))
	assert.Equal(t, piece.Path("DRLSU"), canon.Shift("RLSUD", -1))
	assert.Equal(t, piece.Path(""), canon.Shift("", 3))
}

// TestUnique collapses the sixteen-turn enumeration to its symmetry classes.
func TestUnique(t *testing.T) {
	paths, err := search.Enumerate(piece.Inventory{Turns: 16})
	require.NoError(t, err)
	unique := canon.Unique(paths)
	assert.Len(t, unique, 7)
	assert.Contains(t, unique, piece.Path("LLLLLLLLRRRRRRRR"))
	assert.IsNonDecreasing(t, unique)

	paths, err = search.Enumerate(piece.Inventory{Straight: 2, Turns: 8})
	require.NoError(t, err)
	assert.Equal(t, []piece.Path{"LLLLSLLLLS"}, canon.Unique(paths))
}

func TestCanonicalize_UnknownSymbolPanics(t *testing.T) {
	const msg = "piece: invalid piece symbol: 'X' at index 0"
	assert.PanicsWithError(t, msg, func() { canon.Canonicalize("XRRRRXRRRR") })
	assert.PanicsWithError(t, msg, func() { canon.Unique([]piece.Path{"LLLLLLLL", "XRRRRXRRRR"}) })
	assert.PanicsWithError(t, msg, func() { canon.Equivalent("XRRRRXRRRR", "SRRRRSRRRR") })
}
