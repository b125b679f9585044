package trial

import (
	"sort"
	"sync"

	"tacticsim/internal/match"
)

// Key identifies a tactic playing in a given team slot.
type Key struct {
	Tactic string
	Slot   int
}

// Stat is the aggregate for one Key. Averages run over every match the key
// took part in.
type Stat struct {
	Tactic              string  `json:"tactic" yaml:"tactic"`
	Slot                string  `json:"slot" yaml:"slot"`
	Trials              int     `json:"trials" yaml:"trials"`
	Wins                int     `json:"wins" yaml:"wins"`
	WinRate             float64 `json:"win_rate" yaml:"win_rate"`
	AvgDistance         float64 `json:"avg_distance" yaml:"avg_distance"`
	AvgSuccessfulPasses float64 `json:"avg_successful_passes" yaml:"avg_successful_passes"`
	AvgFailedPasses     float64 `json:"avg_failed_passes" yaml:"avg_failed_passes"`
	AvgIterations       float64 `json:"avg_iterations" yaml:"avg_iterations"`
}

type sums struct {
	trials, wins, iterations int
	distance                 float64
	successful, failed       int
}

// Summary is the outcome of a sweep.
type Summary struct {
	Seed    int64  `json:"seed" yaml:"seed"`
	Configs int    `json:"configs" yaml:"configs"`
	Skipped int    `json:"skipped" yaml:"skipped"`
	Matches int    `json:"matches" yaml:"matches"`
	Capped  int    `json:"capped" yaml:"capped"`
	Partial bool   `json:"partial" yaml:"partial"`
	Stats   []Stat `json:"stats" yaml:"stats"`
}

// aggregate collects match results from many workers.
type aggregate struct {
	mu      sync.Mutex
	matches int
	capped  int
	byKey   map[Key]*sums
}

func newAggregate() *aggregate {
	return &aggregate{byKey: map[Key]*sums{}}
}

func (a *aggregate) add(cfg Config, res match.SimResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.matches++
	if res.CapReached {
		a.capped++
	}
	for slot, name := range cfg.Tactics {
		k := Key{Tactic: name, Slot: slot}
		s := a.byKey[k]
		if s == nil {
			s = &sums{}
			a.byKey[k] = s
		}
		s.trials++
		if int(res.WinningTeam) == slot {
			s.wins++
		}
		s.iterations += res.Iterations
		s.distance += res.TotalDistance
		s.successful += res.SuccessfulPasses
		s.failed += res.FailedPasses
	}
}

// stats returns one row per key, ordered by tactic then slot.
func (a *aggregate) stats() []Stat {
	a.mu.Lock()
	defer a.mu.Unlock()
	keys := make([]Key, 0, len(a.byKey))
	for k := range a.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Tactic != keys[j].Tactic {
			return keys[i].Tactic < keys[j].Tactic
		}
		return keys[i].Slot < keys[j].Slot
	})
	out := make([]Stat, 0, len(keys))
	for _, k := range keys {
		s := a.byKey[k]
		n := float64(s.trials)
		out = append(out, Stat{
			Tactic:              k.Tactic,
			Slot:                match.TeamID(k.Slot).String(),
			Trials:              s.trials,
			Wins:                s.wins,
			WinRate:             float64(s.wins) / n,
			AvgDistance:         s.distance / n,
			AvgSuccessfulPasses: float64(s.successful) / n,
			AvgFailedPasses:     float64(s.failed) / n,
			AvgIterations:       float64(s.iterations) / n,
		})
	}
	return out
}

// Lookup returns the row for a tactic and slot.
func (s *Summary) Lookup(tactic string, slot int) (Stat, bool) {
	want := match.TeamID(slot).String()
	for _, st := range s.Stats {
		if st.Tactic == tactic && st.Slot == want {
			return st, true
		}
	}
	return Stat{}, false
}
