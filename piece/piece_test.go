package piece_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// TestParsePath_RejectsUnknownSymbols ensures malformed paths fail fast.
func TestParsePath_RejectsUnknownSymbols(t *testing.T) {
	p, err := piece.ParsePath("SRLUD")
	require.NoError(t, err)
	assert.Equal(t, piece.Path("SRLUD"), p)

	_, err = piece.ParsePath("SRX")
	assert.True(t, errors.Is(err, piece.ErrInvalidPiece))

	_, err = piece.ParsePath("srl")
	assert.ErrorIs(t, err, piece.ErrInvalidPiece)
}

// TestPath_AtWraps checks circular indexing in both directions.
func TestPath_AtWraps(t *testing.T) {
	p := piece.Path("SRU")
	assert.Equal(t, piece.Straight, p.At(0))
	assert.Equal(t, piece.Straight, p.At(3))
	assert.Equal(t, piece.Uphill, p.At(-1))
	assert.Equal(t, piece.TurnRight, p.At(-5))
}

func TestPath_Counts(t *testing.T) {
	p := piece.Path("SRRLUDSS")
	assert.Equal(t, 3, p.Count(piece.Straight))
	assert.Equal(t, 3, p.Turns())
	assert.Equal(t, piece.Inventory{Straight: 3, Turns: 3, Ups: 1, Downs: 1}, piece.Of(p))
	assert.Equal(t, p, piece.FromPieces(p.Pieces()))
}

func TestPiece_Deltas(t *testing.T) {
	assert.Equal(t, 1, piece.TurnRight.HeadingDelta())
	assert.Equal(t, -1, piece.TurnLeft.HeadingDelta())
	assert.Equal(t, 0, piece.Uphill.HeadingDelta())
	assert.Equal(t, 1, piece.Uphill.LevelDelta())
	assert.Equal(t, -1, piece.Downhill.LevelDelta())
	assert.Equal(t, 0, piece.Straight.LevelDelta())
	assert.Equal(t, piece.TurnLeft, piece.TurnRight.Mirror())
	assert.Equal(t, piece.Uphill, piece.Uphill.Mirror())
	assert.Equal(t, 7, piece.NormHeading(-1))
	assert.Equal(t, 0, piece.NormHeading(16))
}

// TestTurnSize pins the chord of a 45° arc with unit radius.
func TestTurnSize(t *testing.T) {
	assert.InDelta(t, math.Sqrt(2-math.Sqrt2), piece.TurnSize, 1e-15)
	assert.InDelta(t, 2*math.Sin(math.Pi/8), piece.TurnSize, 1e-15)
}

// TestPillarCost covers the linear costs and the shared-pillar rule.
func TestPillarCost(t *testing.T) {
	assert.Equal(t, 3, piece.PillarCost(piece.Straight, piece.Straight, 3))
	assert.Equal(t, 2, piece.PillarCost(piece.TurnLeft, piece.Uphill, 2))
	assert.Equal(t, 4, piece.PillarCost(piece.Uphill, piece.Straight, 2))
	// downhill after an uphill shares a pillar
	assert.Equal(t, 1, piece.PillarCost(piece.Downhill, piece.Uphill, 2))
	// otherwise it pays level-1 twice
	assert.Equal(t, 2, piece.PillarCost(piece.Downhill, piece.Straight, 2))
	assert.Equal(t, 0, piece.PillarCost(piece.Downhill, piece.TurnRight, 1))
}

func TestInventory_Validate(t *testing.T) {
	require.NoError(t, piece.Inventory{Turns: 8}.Validate())
	err := piece.Inventory{Turns: 8, Pillars: -1}.Validate()
	assert.ErrorIs(t, err, piece.ErrNegativeInventory)
	assert.Contains(t, err.Error(), "pillars")
	assert.Equal(t, 10, piece.Inventory{Straight: 2, Turns: 6, Ups: 1, Downs: 1, Pillars: 9}.Pieces())
	assert.Equal(t, "s1-t2-u3-d4-p5", piece.Inventory{Straight: 1, Turns: 2, Ups: 3, Downs: 4, Pillars: 5}.Key())
}

// TestPiece_UnknownSymbolPanics checks that the geometric accessors refuse
// a byte outside the five pieces.
func TestPiece_UnknownSymbolPanics(t *testing.T) {
	x := piece.Piece('X')
	const msg = "piece: invalid piece symbol: 'X'"
	assert.PanicsWithError(t, msg, func() { x.HeadingDelta() })
	assert.PanicsWithError(t, msg, func() { x.LevelDelta() })
	assert.PanicsWithError(t, msg, func() { x.Length() })
	assert.PanicsWithError(t, msg, func() { x.ChordAngle(0) })
	assert.PanicsWithError(t, msg, func() { piece.BaseCost(x) })
	assert.PanicsWithError(t, msg, func() { piece.PillarCost(piece.Straight, x, 1) })
}

func TestPath_MustValidate(t *testing.T) {
	assert.NotPanics(t, func() { piece.Path("SRLUD").MustValidate() })
	assert.NotPanics(t, func() { piece.Path("").MustValidate() })
	assert.PanicsWithError(t, "piece: invalid piece symbol: '?' at index 4",
		func() { piece.Path("RRRR?RRRR").MustValidate() })
}

func TestPath_AtEmptyPanics(t *testing.T) {
	assert.PanicsWithValue(t, "piece: At on an empty path", func() { piece.Path("").At(0) })
}
