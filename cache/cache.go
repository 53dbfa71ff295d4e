// Package cache stores enumerated paths per inventory in a buntdb file, so
// a repeated run can skip the search.
//
// Records are JSON values under "tracks:<inventory key>". The path ":memory:"
// opens an in-memory store.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/buntdb"
	"go.uber.org/zap"

	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// ErrNotFound is returned by Get when no record exists for an inventory.
var ErrNotFound = errors.New("cache: record not found")

const keyPrefix = "tracks:"

// Record is one cached enumeration.
type Record struct {
	RunID     uuid.UUID       `json:"run_id"`
	Inventory piece.Inventory `json:"inventory"`
	Paths     []piece.Path    `json:"paths"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store is a buntdb-backed record store. It is safe for concurrent use.
type Store struct {
	db *buntdb.DB
}

// Key returns the database key for inv.
func Key(inv piece.Inventory) string { return keyPrefix + inv.Key() }

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	var cfg buntdb.Config
	if err := db.ReadConfig(&cfg); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: read config %s: %w", path, err)
	}
	cfg.SyncPolicy = buntdb.Always
	if err := db.SetConfig(cfg); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: configure %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the record for inv. A stored path with an unknown symbol
// fails with piece.ErrInvalidPiece.
func (s *Store) Get(inv piece.Inventory) (Record, error) {
	var r Record
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(Key(inv))
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(value), &r); err != nil {
			return err
		}
		return validatePaths(r.Paths)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, inv.Key())
	}
	if err != nil {
		return Record{}, fmt.Errorf("cache: get %s: %w", inv.Key(), err)
	}
	return r, nil
}

// Put stores r under its inventory, replacing any previous record. A zero
// RunID is filled with a new one. Paths with unknown symbols are rejected
// with piece.ErrInvalidPiece.
func (s *Store) Put(r Record) (Record, error) {
	if err := validatePaths(r.Paths); err != nil {
		return Record{}, fmt.Errorf("cache: put %s: %w", r.Inventory.Key(), err)
	}
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return Record{}, fmt.Errorf("cache: marshal: %w", err)
	}
	key := Key(r.Inventory)
	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, replaced, err := tx.Set(key, string(data), nil)
		if err != nil {
			return err
		}
		if replaced {
			zap.S().Debugw("cache: replaced record", "key", key, "run", r.RunID)
		}
		return nil
	})
	if err != nil {
		return Record{}, fmt.Errorf("cache: put %s: %w", key, err)
	}
	return r, nil
}

// Delete removes the record for inv. Deleting a missing record is not an
// error.
func (s *Store) Delete(inv piece.Inventory) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(Key(inv))
		return err
	})
	if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("cache: delete %s: %w", inv.Key(), err)
	}
	return nil
}

// Records returns every stored record in key order. Undecodable values are
// logged and skipped.
func (s *Store) Records() ([]Record, error) {
	var out []Record
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(keyPrefix+"*", func(key, value string) bool {
			if !strings.HasPrefix(key, keyPrefix) {
				return true
			}
			var r Record
			if err := json.Unmarshal([]byte(value), &r); err != nil {
				zap.S().Errorw("cache: unmarshalling failed", "key", key, "err", err)
				return true
			}
			out = append(out, r)
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("cache: list: %w", err)
	}
	return out, nil
}

func validatePaths(paths []piece.Path) error {
	for _, p := range paths {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
