package simplify_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/simplify"
)

func TestOccurrences(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, simplify.Occurrences("SRSLS", "S"))
	assert.Equal(t, []int{4}, simplify.Occurrences("SRSLS", "SS"), "wraps")
	assert.Empty(t, simplify.Occurrences("SRSLS", "US"))
	assert.Equal(t, []int{0, 1, 2}, simplify.Occurrences("SSS", "SSS"))
	assert.Empty(t, simplify.Occurrences("SS", "SSS"))
}

func TestReplacements(t *testing.T) {
	got := simplify.Replacements("SUSLSU", simplify.Rule{Match: "US", Replace: "SU"})
	assert.Equal(t, []piece.Path{"SSULSU", "USLSSU"}, got)
}

func TestRemovals(t *testing.T) {
	tests := []struct {
		p    piece.Path
		pair simplify.Pair
		want []piece.Path
	}{
		{"SRRRRSRRRR", simplify.Pair{A: "S", B: "S"}, []piece.Path{"RRRRRRRR"}},
		{"RLRRRRLRRRRR", simplify.Pair{A: "RL", B: "LR"}, []piece.Path{"RRRRRRRR"}},
		{"DLLSLRLUDLSLLLSRSLUL", simplify.Pair{A: "S", B: "S"}, []piece.Path{"DLLLRLUDLSLLLSRLUL"}},
		// same heading: nothing cancels
		{"SSRRRRRRRR", simplify.Pair{A: "S", B: "S"}, nil},
	}
	for _, tc := range tests {
		got := simplify.Removals(tc.p, tc.pair)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Removals(%s, %v) mismatch (-want +got):\n%s", tc.p, tc.pair, diff)
		}
	}
}

func TestSimplifications(t *testing.T) {
	got := slices.Collect(simplify.Simplifications("SRRRRSRRRR"))
	assert.Equal(t, []piece.Path{"LLLLLLLL"}, got)

	// bridge compactions come first and are canonicalized
	got = slices.Collect(simplify.Simplifications("SUSLSU"))
	assert.Equal(t, []piece.Path{"LSUSSU", "LSSUUS"}, got[:2])

	// restartable and stops early
	seq := simplify.Simplifications("SUSLSU")
	for q := range seq {
		assert.Equal(t, piece.Path("LSUSSU"), q)
		break
	}
	assert.Equal(t, got, slices.Collect(seq))

	assert.Empty(t, slices.Collect(simplify.Simplifications("RRRRRRRR")))
}

func TestReducible(t *testing.T) {
	set := map[piece.Path]struct{}{"LLLLLLLL": {}, "LLLLSLLLLS": {}}
	assert.True(t, simplify.Reducible("SRRRRSRRRR", set))
	assert.False(t, simplify.Reducible("RRRRRRRR", set))
	assert.False(t, simplify.Reducible("SRRRRSRRRR", map[piece.Path]struct{}{}))
}

func TestMinimal(t *testing.T) {
	got := simplify.Minimal([]piece.Path{"SRRRRSRRRR", "RRRRRRRR"})
	assert.Equal(t, []piece.Path{"LLLLLLLL"}, got)

	got = simplify.Minimal([]piece.Path{"LLLLLLLL", "RRRRRLRRRRRL", "LLLLSLLLLS", "SLLLLSLLLL"})
	assert.Equal(t, []piece.Path{"LLLLLLLL", "LLLLLRLLLLLR"}, got)

	assert.Empty(t, simplify.Minimal(nil))
}

func TestUnknownSymbolPanics(t *testing.T) {
	const msg = "piece: invalid piece symbol: '?' at index 4"
	assert.PanicsWithError(t, msg, func() {
		simplify.Minimal([]piece.Path{"SRRRRSRRRR", "RRRR?RRRR"})
	})
	// Simplifications fails when called, not when ranged over.
	assert.PanicsWithError(t, msg, func() { simplify.Simplifications("RRRR?RRRR") })
	assert.PanicsWithError(t, msg, func() {
		simplify.Reducible("RRRR?RRRR", map[piece.Path]struct{}{})
	})
}
