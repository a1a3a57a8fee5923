// Package batch orchestrates many independent game simulations for one board
// size and aggregates their wrong-move counts.
package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pairsim/sim"
)

// ErrNoTrials is returned when a run is requested with a non-positive trial
// count.
var ErrNoTrials = errors.New("trial count must be positive")

// RunSpec describes one batch: a board size, a trial count and a master seed.
// Per-game seeds are derived from Seed, so a run is reproducible regardless
// of Workers. Workers <= 0 uses the number of CPUs.
type RunSpec struct {
	Rows    int
	Cols    int
	Trials  int
	Seed    int64
	Workers int
	Logger  *slog.Logger
}

// Run plays spec.Trials independent games and aggregates the results. Each
// game owns its board, memory and counters, so games run concurrently with
// no shared state beyond the results slice (one slot per trial).
func Run(spec RunSpec) (Stats, error) {
	if spec.Trials <= 0 {
		return Stats{}, fmt.Errorf("%dx%d batch: %w", spec.Rows, spec.Cols, ErrNoTrials)
	}
	logger := spec.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := spec.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Derive all game seeds up front from the master seed so results do not
	// depend on worker scheduling.
	rng := rand.New(rand.NewSource(spec.Seed))
	seeds := make([]int64, spec.Trials)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	logger.Debug("starting batch",
		"tag", "batch",
		"rows", spec.Rows, "cols", spec.Cols,
		"trials", spec.Trials, "workers", workers, "seed", spec.Seed)

	results := make([]sim.Result, spec.Trials)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range seeds {
		i := i
		g.Go(func() error {
			engine, err := sim.New(spec.Rows, spec.Cols,
				sim.WithSeed(seeds[i]),
				sim.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			results[i] = engine.Play()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("%dx%d batch: %w", spec.Rows, spec.Cols, err)
	}

	stats := aggregate(spec.Rows, spec.Cols, results)
	if stats.Incomplete > 0 {
		logger.Warn("some games hit the turn cap",
			"tag", "batch", "rows", spec.Rows, "cols", spec.Cols, "incomplete", stats.Incomplete)
	}
	return stats, nil
}
