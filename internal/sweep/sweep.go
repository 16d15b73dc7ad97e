// Package sweep estimates how much of a forest burns across a grid of
// density and spread settings by running many independent simulations.
package sweep

import (
	"context"
	"runtime"

	"forest-fire/internal/core"
	"forest-fire/internal/ctxlog"
	"forest-fire/internal/fire"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Options describes one sweep.
type Options struct {
	Size      int
	Densities []float64
	Spreads   []float64
	Trials    int
	Seed      int64
	Workers   int
}

// Result aggregates the trials of one (density, spread) pair.
type Result struct {
	Density float64
	Spread  float64

	Trials int
	// NoFuel counts trials whose forest had no tree to ignite.
	NoFuel int

	MeanBurnedFraction float64
	MeanSteps          float64
	MaxSteps           int
}

type trial struct {
	outcome fire.Outcome
	noFuel  bool
}

// Run executes every trial and returns one Result per pair, densities
// varying slowest. Each trial owns an RNG derived from the seed and its
// position, so results do not depend on scheduling.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Trials <= 0 {
		return nil, errors.Wrapf(fire.ErrInvalidParameter, "trials %d must be positive", opts.Trials)
	}
	if len(opts.Densities) == 0 || len(opts.Spreads) == 0 {
		return nil, errors.Wrap(fire.ErrInvalidParameter, "sweep needs at least one density and one spread")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var cfgs []fire.Config
	for _, d := range opts.Densities {
		for _, s := range opts.Spreads {
			cfg := fire.DefaultConfig()
			cfg.Size = opts.Size
			cfg.Density = d
			cfg.Spread = s
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			cfgs = append(cfgs, cfg)
		}
	}

	log := ctxlog.FromContext(ctx)
	log.Info("sweep started", "pairs", len(cfgs), "trials", opts.Trials, "workers", workers)

	trials := make([]trial, len(cfgs)*opts.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range trials {
		cfg := cfgs[i/opts.Trials]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fire.Simulate(cfg, core.Derive(opts.Seed, uint64(i)), 0)
			if errors.Is(err, fire.ErrNoFuelAvailable) {
				trials[i] = trial{noFuel: true}
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "trial %d (density %v, spread %v)", i, cfg.Density, cfg.Spread)
			}
			trials[i] = trial{outcome: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(cfgs))
	for p, cfg := range cfgs {
		results[p] = aggregate(cfg, trials[p*opts.Trials:(p+1)*opts.Trials])
		log.Debug("pair done",
			"density", cfg.Density,
			"spread", cfg.Spread,
			"burned_fraction", results[p].MeanBurnedFraction,
		)
	}
	return results, nil
}

// aggregate averages the trials that had fuel. Trials without fuel count
// towards NoFuel only.
func aggregate(cfg fire.Config, ts []trial) Result {
	r := Result{Density: cfg.Density, Spread: cfg.Spread, Trials: len(ts)}
	lit := 0
	for _, t := range ts {
		if t.noFuel {
			r.NoFuel++
			continue
		}
		lit++
		r.MeanBurnedFraction += t.outcome.BurnedFraction()
		r.MeanSteps += float64(t.outcome.Steps)
		if t.outcome.Steps > r.MaxSteps {
			r.MaxSteps = t.outcome.Steps
		}
	}
	if lit > 0 {
		r.MeanBurnedFraction /= float64(lit)
		r.MeanSteps /= float64(lit)
	}
	return r
}
