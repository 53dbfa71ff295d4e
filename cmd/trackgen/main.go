// Command trackgen lists the closed loops a box of train track pieces can
// build.
//
//	trackgen -turns 16 -straight 2                 # solve
//	trackgen -mode simplify < tracks.txt           # keep minimal layouts
//	trackgen -mode validate -pillars 4 < tracks.txt
//
// Settings come from -config (YAML, see package config); flags given on the
// command line override it.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jahodfra/IkeaTrainTrack/cache"
	"github.com/jahodfra/IkeaTrainTrack/config"
	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/search"
	"github.com/jahodfra/IkeaTrainTrack/simplify"
	"github.com/jahodfra/IkeaTrainTrack/solver"
	"github.com/jahodfra/IkeaTrainTrack/track"
)

var (
	configPath string
	cachePath  string
	mode       string
	all        bool
	workers    int
	maxPieces  int
	inv        piece.Inventory
)

func main() {
	def := config.Default()
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&cachePath, "cache", "", "path to the result cache (buntdb)")
	flag.StringVar(&mode, "mode", "solve", "solve, simplify or validate")
	flag.BoolVar(&all, "all", false, "print every valid track, not only the minimal ones")
	flag.IntVar(&workers, "workers", def.Workers, "search workers")
	flag.IntVar(&maxPieces, "max-pieces", def.MaxPieces, "reject inventories with more pieces (0 = no limit)")
	flag.IntVar(&inv.Straight, "straight", def.Inventory.Straight, "number of straight pieces")
	flag.IntVar(&inv.Turns, "turns", def.Inventory.Turns, "number of turn pieces")
	flag.IntVar(&inv.Ups, "ups", def.Inventory.Ups, "number of uphill pieces")
	flag.IntVar(&inv.Downs, "downs", def.Inventory.Downs, "number of downhill pieces")
	flag.IntVar(&inv.Pillars, "pillars", def.Inventory.Pillars, "number of support pillars")
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	flag.Parse()

	os.Exit(trackgen(*level, []string{"stderr"}, os.Stdin, os.Stdout))
}

// trackgen installs the global logger, runs the selected mode and returns
// the exit code. The logger is flushed on return, before main exits.
func trackgen(level zapcore.Level, logPaths []string, in io.Reader, out io.Writer) int {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = logPaths
	dev, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trackgen: logger: %s\n", err)
		return 2
	}
	defer dev.Sync()
	defer zap.ReplaceGlobals(dev)()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, in, out); err != nil {
		zap.S().Errorf("trackgen: %s", err)
		return 1
	}
	return 0
}

// settings merges the config file with explicitly set flags.
func settings() (config.File, error) {
	f := config.Default()
	if configPath != "" {
		var err error
		if f, err = config.Load(configPath); err != nil {
			return config.File{}, err
		}
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "straight":
			f.Inventory.Straight = inv.Straight
		case "turns":
			f.Inventory.Turns = inv.Turns
		case "ups":
			f.Inventory.Ups = inv.Ups
		case "downs":
			f.Inventory.Downs = inv.Downs
		case "pillars":
			f.Inventory.Pillars = inv.Pillars
		case "workers":
			f.Workers = workers
		case "max-pieces":
			f.MaxPieces = maxPieces
		case "cache":
			f.Cache = cachePath
		}
	})
	return f, f.Validate()
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	f, err := settings()
	if err != nil {
		return err
	}
	switch mode {
	case "solve":
		return solve(ctx, f, out)
	case "simplify":
		paths, err := readPaths(in)
		if err != nil {
			return err
		}
		for _, p := range simplify.Minimal(paths) {
			fmt.Fprintln(out, p)
		}
		return nil
	case "validate":
		paths, err := readPaths(in)
		if err != nil {
			return err
		}
		for _, p := range paths {
			if err := track.Check(p, f.Inventory); err != nil {
				fmt.Fprintf(out, "%s\tinvalid\t%s\n", p, err)
				continue
			}
			fmt.Fprintf(out, "%s\tok\n", p)
		}
		return nil
	}
	return fmt.Errorf("unknown mode %q", mode)
}

func solve(ctx context.Context, f config.File, out io.Writer) error {
	opts := []solver.Option{
		solver.WithSearch(search.WithWorkers(f.Workers), search.WithMaxPieces(f.MaxPieces)),
	}
	if f.Cache != "" {
		store, err := cache.Open(f.Cache)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, solver.WithCache(store))
	}
	res, err := solver.Solve(ctx, f.Inventory, opts...)
	if err != nil {
		return err
	}

	tracks := res.Minimal
	if all {
		tracks = res.Valid
	}
	fmt.Fprintf(out, "# %s run %s: %d raw, %d unique, %d valid, %d minimal\n",
		f.Inventory, res.RunID, res.Raw, len(res.Canonical), len(res.Valid), len(res.Minimal))
	fmt.Fprintln(out, "# track\tS\tT\tU\tD\tP")
	for _, p := range tracks {
		t, err := track.New(p)
		if err != nil {
			return err
		}
		s := t.Stats()
		fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%d\t%d\n", p, s.Straight, s.Turns, s.Ups, s.Downs, s.Pillars)
	}
	return nil
}

// readPaths reads one path per line, skipping blank lines and # comments.
func readPaths(in io.Reader) ([]piece.Path, error) {
	var out []piece.Path
	sc := bufio.NewScanner(in)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if len(text) > 0 && text[0] == '#' {
			continue
		}
		p, err := piece.ParsePath(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if p.Len() == 0 {
			continue
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return out, nil
}
