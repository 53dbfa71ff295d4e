// Package solver runs the whole pipeline for one inventory: enumerate (or
// load from cache), canonicalize, validate, and drop reducible layouts.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jahodfra/IkeaTrainTrack/cache"
	"github.com/jahodfra/IkeaTrainTrack/canon"
	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/search"
	"github.com/jahodfra/IkeaTrainTrack/simplify"
	"github.com/jahodfra/IkeaTrainTrack/track"
)

// Options configures Solve.
type Options struct {
	Logger *zap.SugaredLogger
	Search []search.Option
	Cache  *cache.Store
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// WithLogger sets the logger. The default is the global zap.S().
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearch passes options through to search.Enumerate.
func WithSearch(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithCache reads enumerated paths from, and writes them to, s.
func WithCache(s *cache.Store) Option {
	return func(o *Options) { o.Cache = s }
}

// Result is the outcome of one Solve call.
type Result struct {
	RunID     uuid.UUID
	Inventory piece.Inventory
	// Raw is the number of enumerated sequences before canonicalization.
	Raw int
	// Canonical holds the distinct layouts, sorted.
	Canonical []piece.Path
	// Valid holds the buildable layouts among Canonical.
	Valid []piece.Path
	// Minimal holds the members of Valid no other member simplifies to.
	Minimal   []piece.Path
	FromCache bool
	Elapsed   time.Duration
}

// Solve runs the pipeline for inv. ctx is checked between phases.
func Solve(ctx context.Context, inv piece.Inventory, opts ...Option) (*Result, error) {
	o := Options{Logger: zap.S()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{RunID: uuid.New(), Inventory: inv}
	log := o.Logger.With("run", res.RunID, "inventory", inv.Key())

	raw, err := enumerate(inv, o, res, log)
	if err != nil {
		return nil, err
	}
	res.Raw = len(raw)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Canonical = canon.Unique(raw)
	log.Debugw("canonicalized", "unique", len(res.Canonical))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Valid = track.Filter(res.Canonical, inv)
	log.Debugw("validated", "valid", len(res.Valid))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Minimal = simplify.Minimal(res.Valid)
	res.Elapsed = time.Since(start)
	log.Infow("solved",
		"raw", res.Raw,
		"unique", len(res.Canonical),
		"valid", len(res.Valid),
		"minimal", len(res.Minimal),
		"cached", res.FromCache,
		"elapsed", res.Elapsed)
	return res, nil
}

// enumerate loads raw paths from the cache or runs the search and stores
// the result.
func enumerate(inv piece.Inventory, o Options, res *Result, log *zap.SugaredLogger) ([]piece.Path, error) {
	if o.Cache != nil {
		rec, err := o.Cache.Get(inv)
		switch {
		case err == nil:
			log.Infow("loaded from cache", "cachedRun", rec.RunID, "paths", len(rec.Paths))
			res.FromCache = true
			return rec.Paths, nil
		case !errors.Is(err, cache.ErrNotFound):
			log.Warnw("cache read failed", "err", err)
		}
	}

	t := time.Now()
	sopts := append([]search.Option{search.WithOnStep(func(p search.Progress) {
		log.Debugw("search step",
			"phase", p.Phase.String(),
			"step", p.Step,
			"frontier", p.Frontier,
			"total", p.Total)
	})}, o.Search...)
	raw, err := search.Enumerate(inv, sopts...)
	if err != nil {
		return nil, err
	}
	log.Infow("enumerated", "paths", len(raw), "took", time.Since(t))

	if o.Cache != nil {
		if _, err := o.Cache.Put(cache.Record{RunID: res.RunID, Inventory: inv, Paths: raw}); err != nil {
			log.Warnw("cache write failed", "err", err)
		}
	}
	return raw, nil
}
