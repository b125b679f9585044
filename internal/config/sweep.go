package config

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"tacticsim/internal/match"
	"tacticsim/internal/tactics"
	"tacticsim/internal/trial"
)

const (
	DefaultTrials      = 1000
	DefaultMinTeamSize = 2
	DefaultMaxTeamSize = 11
)

var ErrBadSpan = errors.New("bad span")

// Span is a list of values written either as a sequence, a single scalar or
// a {from, to, step} range with both ends included.
type Span []float64

func (s *Span) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		*s = Span{v}
	case yaml.SequenceNode:
		var v []float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		*s = v
	case yaml.MappingNode:
		var r struct {
			From float64 `yaml:"from"`
			To   float64 `yaml:"to"`
			Step float64 `yaml:"step"`
		}
		if err := n.Decode(&r); err != nil {
			return err
		}
		if r.Step <= 0 || r.To < r.From {
			return fmt.Errorf("line %d: from %v to %v step %v: %w", n.Line, r.From, r.To, r.Step, ErrBadSpan)
		}
		count := int(math.Floor((r.To-r.From)/r.Step+1e-9)) + 1
		out := make(Span, count)
		for i := range out {
			out[i] = r.From + float64(i)*r.Step
		}
		*s = out
	default:
		return fmt.Errorf("line %d: %w", n.Line, ErrBadSpan)
	}
	return nil
}

type TeamSize struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SweepConfig is the YAML form of a trial sweep.
type SweepConfig struct {
	Bounds        Span     `yaml:"bounds"`
	Radii         Span     `yaml:"radii"`
	Teams         []int    `yaml:"teams"`
	TeamSize      TeamSize `yaml:"team_size"`
	Tactics       []string `yaml:"tactics"`
	Scenarios     []string `yaml:"scenarios"`
	AllFormations bool     `yaml:"all_formations"`
	Trials        int      `yaml:"trials"`
	MaxIterations int      `yaml:"max_iterations"`
	Seed          int64    `yaml:"seed"`
	Grid          int      `yaml:"grid"`
}

func (c *SweepConfig) applyDefaults() {
	if len(c.Teams) == 0 {
		c.Teams = []int{match.MinTeams}
	}
	if c.TeamSize.Min == 0 {
		c.TeamSize.Min = DefaultMinTeamSize
	}
	if c.TeamSize.Max == 0 {
		c.TeamSize.Max = DefaultMaxTeamSize
	}
	if len(c.Tactics) == 0 {
		c.Tactics = tactics.Names()
	}
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = match.DefaultMaxIterations
	}
}

// Sweep converts the file form into a runnable sweep. A non-zero seed
// overrides the file's.
func (c *SweepConfig) Sweep(seed int64) (trial.Sweep, error) {
	scenarios := make([]match.Scenario, 0, len(c.Scenarios))
	for _, name := range c.Scenarios {
		sc, err := match.ParseScenario(name)
		if err != nil {
			return trial.Sweep{}, err
		}
		scenarios = append(scenarios, sc)
	}
	if seed == 0 {
		seed = c.Seed
	}
	s := trial.Sweep{
		Bounds:        c.Bounds,
		Radii:         c.Radii,
		TeamCounts:    c.Teams,
		MinTeamSize:   c.TeamSize.Min,
		MaxTeamSize:   c.TeamSize.Max,
		Tactics:       c.Tactics,
		Scenarios:     scenarios,
		AllFormations: c.AllFormations,
		Trials:        c.Trials,
		MaxIterations: c.MaxIterations,
		Seed:          seed,
	}
	return s, s.Validate()
}
