// Package config loads solver settings from YAML.
//
//	inventory:
//	  straight: 4
//	  turns: 12
//	  ups: 2
//	  downs: 2
//	  pillars: 4
//	workers: 4
//	max_pieces: 40
//	cache: tracks.db
//
// Missing keys keep their Default values. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// ErrInvalidConfig is returned for settings outside their allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// File is the on-disk configuration.
type File struct {
	Inventory piece.Inventory `yaml:"inventory"`
	Workers   int             `yaml:"workers"`
	MaxPieces int             `yaml:"max_pieces"`
	Cache     string          `yaml:"cache"`
}

// Default returns the inventory of a common starter set, one worker, no
// piece bound and no cache.
func Default() File {
	return File{
		Inventory: piece.Inventory{Straight: 4, Turns: 12, Ups: 2, Downs: 2, Pillars: 4},
		Workers:   1,
	}
}

// Validate checks every field.
func (f File) Validate() error {
	if err := f.Inventory.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if f.Workers < 0 {
		return fmt.Errorf("%w: workers = %d", ErrInvalidConfig, f.Workers)
	}
	if f.MaxPieces < 0 {
		return fmt.Errorf("%w: max_pieces = %d", ErrInvalidConfig, f.MaxPieces)
	}
	return nil
}

// Parse decodes data over Default. Empty input yields Default.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}
