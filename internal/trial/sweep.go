package trial

import (
	"errors"
	"fmt"
	"slices"

	"tacticsim/internal/match"
	"tacticsim/internal/tactics"
)

var ErrInvalidSweep = errors.New("invalid sweep")

// Sweep is the configuration space of a run. Every combination of its
// ranges is played Trials times.
type Sweep struct {
	Bounds        []float64
	Radii         []float64
	TeamCounts    []int
	MinTeamSize   int
	MaxTeamSize   int
	Tactics       []string
	Scenarios     []match.Scenario
	AllFormations bool // enumerate every line-group alignment instead of the scenario layout
	Trials        int
	MaxIterations int
	Seed          int64
}

func (s Sweep) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidSweep)
	}
	switch {
	case len(s.Bounds) == 0 || len(s.Radii) == 0:
		return bad("no bounds or radii")
	case len(s.TeamCounts) == 0:
		return bad("no team counts")
	case s.MinTeamSize < 1 || s.MaxTeamSize < s.MinTeamSize:
		return bad("team sizes %d..%d", s.MinTeamSize, s.MaxTeamSize)
	case len(s.Tactics) == 0:
		return bad("no tactics")
	case s.Trials < 1:
		return bad("%d trials", s.Trials)
	case s.MaxIterations < 0:
		return bad("iteration cap %d", s.MaxIterations)
	}
	for _, n := range s.TeamCounts {
		if n < match.MinTeams || n > match.MaxGoals {
			return bad("%d teams, want %d..%d", n, match.MinTeams, match.MaxGoals)
		}
	}
	known := tactics.Names()
	for _, t := range s.Tactics {
		if !slices.Contains(known, t) {
			return fmt.Errorf("%q: %w", t, tactics.ErrUnknownTactic)
		}
	}
	return nil
}

func (s Sweep) scenarios() []match.Scenario {
	if len(s.Scenarios) == 0 {
		return match.Scenarios
	}
	return s.Scenarios
}

// Config is one fully specified point of a sweep.
type Config struct {
	Index      int
	Bound      float64
	Radius     float64
	TeamSizes  []int
	Tactics    []string
	Formations [][]int
	Scenario   match.Scenario
}

// Each calls fn for every configuration in sweep order, stopping at the
// first error.
func (s Sweep) Each(fn func(Config) error) error {
	idx := 0
	for _, bound := range s.Bounds {
		for _, radius := range s.Radii {
			for _, n := range s.TeamCounts {
				tacticCombos := TacticCombos(s.Tactics, n)
				for _, sizes := range TeamSizeCombos(n, s.MinTeamSize, s.MaxTeamSize) {
					formations := [][][]int{nil}
					if s.AllFormations {
						formations = Distributions(sizes)
					}
					for _, sc := range s.scenarios() {
						for _, names := range tacticCombos {
							for _, f := range formations {
								err := fn(Config{
									Index:      idx,
									Bound:      bound,
									Radius:     radius,
									TeamSizes:  sizes,
									Tactics:    names,
									Formations: f,
									Scenario:   sc,
								})
								if err != nil {
									return err
								}
								idx++
							}
						}
					}
				}
			}
		}
	}
	return nil
}

// Count is the number of configurations Each visits.
func (s Sweep) Count() int {
	n := 0
	_ = s.Each(func(Config) error { n++; return nil })
	return n
}

// TeamSizeCombos lists every assignment of sizes lo..hi to n team slots,
// the last slot varying fastest.
func TeamSizeCombos(n, lo, hi int) [][]int {
	if n <= 0 || hi < lo {
		return nil
	}
	var out [][]int
	cur := make([]int, n)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			out = append(out, slices.Clone(cur))
			return
		}
		for v := lo; v <= hi; v++ {
			cur[i] = v
			rec(i + 1)
		}
	}
	rec(0)
	return out
}

// TacticCombos lists every assignment of the named tactics to n team slots,
// repetitions included.
func TacticCombos(names []string, n int) [][]string {
	if n <= 0 || len(names) == 0 {
		return nil
	}
	var out [][]string
	cur := make([]string, n)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			out = append(out, slices.Clone(cur))
			return
		}
		for _, name := range names {
			cur[i] = name
			rec(i + 1)
		}
	}
	rec(0)
	return out
}

// Alignments lists every split of a team into ordered line groups (each at
// least one player), shortest first, then lexicographically.
func Alignments(size int) [][]int {
	if size < 1 {
		return nil
	}
	var out [][]int
	var rec func(left int, path []int)
	rec = func(left int, path []int) {
		if left == 0 {
			out = append(out, slices.Clone(path))
			return
		}
		for v := 1; v <= left; v++ {
			rec(left-v, append(path, v))
		}
	}
	rec(size, nil)
	slices.SortStableFunc(out, func(a, b []int) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})
	return out
}

// Distributions is the cartesian product of each team's alignments.
func Distributions(sizes []int) [][][]int {
	out := [][][]int{{}}
	for _, size := range sizes {
		options := Alignments(size)
		next := make([][][]int, 0, len(out)*len(options))
		for _, prefix := range out {
			for _, a := range options {
				d := append(slices.Clone(prefix), a)
				next = append(next, d)
			}
		}
		out = next
	}
	return out
}
