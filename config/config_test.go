package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahodfra/IkeaTrainTrack/config"
	"github.com/jahodfra/IkeaTrainTrack/piece"
)

func TestParse(t *testing.T) {
	f, err := config.Parse([]byte(`
inventory:
  turns: 16
  pillars: 2
workers: 4
cache: /tmp/tracks.db
`))
	require.NoError(t, err)
	// unspecified inventory fields keep their defaults
	assert.Equal(t, piece.Inventory{Straight: 4, Turns: 16, Ups: 2, Downs: 2, Pillars: 2}, f.Inventory)
	assert.Equal(t, 4, f.Workers)
	assert.Equal(t, 0, f.MaxPieces)
	assert.Equal(t, "/tmp/tracks.db", f.Cache)
}

func TestParse_Empty(t *testing.T) {
	f, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), f)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("inventory:\n  turns: -2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, piece.ErrNegativeInventory)

	_, err = config.Parse([]byte("workers: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse([]byte("max_pieces: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse([]byte("colour: red\n"))
	assert.Error(t, err)

	_, err = config.Parse([]byte("workers: [1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_pieces: 30\n"), 0o644))
	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, f.MaxPieces)
	assert.Equal(t, config.Default().Inventory, f.Inventory)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
