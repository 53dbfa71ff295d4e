package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"

	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// TestGet_RejectsCorruptPaths stores a record behind Put's back and checks
// that Get does not hand its paths out.
func TestGet_RejectsCorruptPaths(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	inv := piece.Inventory{Turns: 8}
	require.NoError(t, s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(Key(inv), `{"paths":["LLLLLLLL","LLLL?LLL"]}`, nil)
		return err
	}))

	_, err = s.Get(inv)
	assert.ErrorIs(t, err, piece.ErrInvalidPiece)
	assert.NotErrorIs(t, err, ErrNotFound)
}
