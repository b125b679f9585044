package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"tacticsim/internal/config"
	"tacticsim/internal/logging"
	"tacticsim/internal/match"
	"tacticsim/internal/tactics"
	"tacticsim/internal/trial"
	"tacticsim/internal/util"
)

type options struct {
	cfgDir, out, sweep string
	teams, tactics     string
	scenario           string
	bound, radius      float64
	maxIter            int
	seed               int64
	workers            int
	format             string
	saveLog            bool
}

func main() {
	var o options
	flag.StringVar(&o.cfgDir, "config", "assets", "config dir (simsvc.yaml)")
	flag.StringVar(&o.out, "out", "out.json", "output file (single) or summary file (sweep)")
	flag.StringVar(&o.sweep, "sweep", "", "sweep file; runs a single match when empty")
	flag.StringVar(&o.teams, "teams", "11,11", "team sizes, comma separated")
	flag.StringVar(&o.tactics, "tactics", "short_pass,voronoi", "tactic per team, comma separated")
	flag.StringVar(&o.scenario, "scenario", "kickoff", "kickoff, corner_kick or goal_kick")
	flag.Float64Var(&o.bound, "bound", 50, "half field width")
	flag.Float64Var(&o.radius, "radius", 5, "adjacency radius")
	flag.IntVar(&o.maxIter, "cap", match.DefaultMaxIterations, "iteration cap")
	flag.Int64Var(&o.seed, "seed", 0, "seed (overrides the config)")
	flag.IntVar(&o.workers, "workers", 0, "sweep workers (overrides the config)")
	flag.StringVar(&o.format, "format", "", "json, yaml or msgpack (overrides the config)")
	flag.BoolVar(&o.saveLog, "log", true, "save the full event log of a single match")
	flag.Parse()

	settings, err := config.Load(o.cfgDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(&settings, o)
	log := logging.New(settings.LogLevel, os.Stderr, settings.LogConsole)

	if o.sweep == "" {
		err = runSingle(log, settings, o)
	} else {
		err = runSweep(log, settings, o)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("simsvc failed")
	}
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(s *config.Settings, o options) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = o.seed
		case "workers":
			s.Workers = o.workers
		case "format":
			s.Format = strings.ToLower(o.format)
		}
	})
}

func runSingle(log zerolog.Logger, s config.Settings, o options) error {
	sizes, err := parseSizes(o.teams)
	if err != nil {
		return err
	}
	book := tactics.NewBook(tactics.Params{Grid: s.Grid})
	strategies, err := book.Resolve(splitList(o.tactics))
	if err != nil {
		return err
	}
	sc, err := match.ParseScenario(o.scenario)
	if err != nil {
		return err
	}

	env := &match.Env{Rng: util.New(s.Seed)}
	res, err := match.RunSingle(env, match.Config{
		TeamSizes:       sizes,
		Strategies:      strategies,
		Scenario:        sc,
		Bound:           o.bound,
		AdjacencyRadius: o.radius,
		MaxIterations:   o.maxIter,
	}, o.saveLog)
	if err != nil {
		return err
	}
	if err := writeOutput(o.out, s.Format, res); err != nil {
		return err
	}
	log.Info().Str("winner", res.Winner).Str("team", res.WinningTeam.String()).
		Int("iterations", res.Iterations).Bool("capped", res.CapReached).
		Str("out", o.out).Msg("single match finished")
	return nil
}

func runSweep(log zerolog.Logger, s config.Settings, o options) error {
	sc, err := config.LoadSweep(o.sweep)
	if err != nil {
		return err
	}
	var seed int64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = s.Seed
		}
	})
	sweep, err := sc.Sweep(seed)
	if err != nil {
		return err
	}
	if sweep.Seed == 0 {
		sweep.Seed = s.Seed
	}
	grid := s.Grid
	if sc.Grid > 0 {
		grid = sc.Grid
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	log.Info().Int("configs", sweep.Count()).Int("trials", sweep.Trials).
		Int64("seed", sweep.Seed).Msg("sweep started")
	runner := trial.NewRunner(tactics.NewBook(tactics.Params{Grid: grid}), s.Workers, log)
	sum, err := runner.Run(ctx, sweep)
	if sum != nil {
		if werr := writeOutput(o.out, s.Format, sum); werr != nil {
			return werr
		}
		log.Info().Str("out", filepath.Base(o.out)).Bool("partial", sum.Partial).Msg("summary written")
	}
	return err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSizes(s string) ([]int, error) {
	parts := splitList(s)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("team size %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}
