package trial

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tacticsim/internal/match"
	"tacticsim/internal/tactics"
	"tacticsim/internal/util"
)

// Runner plays every configuration of a sweep on a pool of workers.
type Runner struct {
	Book    *tactics.Book
	Workers int
	Log     zerolog.Logger
}

func NewRunner(book *tactics.Book, workers int, log zerolog.Logger) *Runner {
	if book == nil {
		book = tactics.NewBook(tactics.Params{})
	}
	return &Runner{Book: book, Workers: workers, Log: log}
}

type job struct {
	cfg   Config
	match match.Config
	trial int
}

func (r *Runner) matchConfig(s Sweep, c Config) (match.Config, error) {
	strategies, err := r.Book.Resolve(c.Tactics)
	if err != nil {
		return match.Config{}, err
	}
	mc := match.Config{
		TeamSizes:       c.TeamSizes,
		Strategies:      strategies,
		Formations:      c.Formations,
		Scenario:        c.Scenario,
		Bound:           c.Bound,
		AdjacencyRadius: c.Radius,
		MaxIterations:   s.MaxIterations,
	}
	return mc, mc.Validate()
}

// Run plays Trials matches per configuration. Each match is seeded from the
// sweep seed, the configuration index and the trial number, so results do
// not depend on scheduling. When ctx ends first, the summary of the matches
// played so far is returned, marked partial, together with ctx's error.
func (r *Runner) Run(ctx context.Context, s Sweep) (*Summary, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	in, err := newInstruments()
	if err != nil {
		return nil, err
	}
	var pending atomic.Int64
	reg, err := in.observePending(&pending)
	if err != nil {
		return nil, fmt.Errorf("registering pending callback: %w", err)
	}
	defer func() { _ = reg.Unregister() }()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	sum := &Summary{Seed: s.Seed}
	agg := newAggregate()
	jobs := make(chan job, workers*2)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		return s.Each(func(c Config) error {
			mc, err := r.matchConfig(s, c)
			if err != nil {
				r.Log.Warn().Err(err).Int("config", c.Index).Ints("sizes", c.TeamSizes).
					Strs("tactics", c.Tactics).Msg("skipping configuration")
				sum.Skipped++
				return nil
			}
			sum.Configs++
			for t := 0; t < s.Trials; t++ {
				pending.Add(1)
				select {
				case jobs <- job{cfg: c, match: mc, trial: t}:
				case <-gctx.Done():
					pending.Add(-1)
					return gctx.Err()
				}
			}
			return nil
		})
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				pending.Add(-1)
				if err := gctx.Err(); err != nil {
					return err
				}
				seed := util.Derive(s.Seed, int64(j.cfg.Index), int64(j.trial))
				res, err := match.RunSingle(&match.Env{Rng: util.New(seed)}, j.match, false)
				if err != nil {
					return fmt.Errorf("config %d trial %d: %w", j.cfg.Index, j.trial, err)
				}
				if res.CapReached && res.TacticGoals[res.Winner] == 0 {
					r.Log.Debug().Int("config", j.cfg.Index).Int("trial", j.trial).
						Msg("iteration cap reached without a goal")
				}
				in.record(gctx, j.cfg, res.Iterations, res.CapReached)
				agg.add(j.cfg, res)
			}
			return nil
		})
	}
	err = g.Wait()

	sum.Matches, sum.Capped = agg.matches, agg.capped
	sum.Stats = agg.stats()
	log := r.Log.With().Int("configs", sum.Configs).Int("skipped", sum.Skipped).
		Int("matches", sum.Matches).Dur("elapsed", time.Since(start)).Logger()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			sum.Partial = true
			log.Warn().Err(ctxErr).Msg("sweep interrupted")
			return sum, ctxErr
		}
		return nil, err
	}
	log.Info().Int("capped", sum.Capped).Msg("sweep finished")
	return sum, nil
}
