package trial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacticsim/internal/match"
	"tacticsim/internal/tactics"
)

func TestAlignments(t *testing.T) {
	assert.Equal(t, [][]int{{1}}, Alignments(1))
	assert.Equal(t, [][]int{{3}, {1, 2}, {2, 1}, {1, 1, 1}}, Alignments(3))
	for size := 1; size <= 11; size++ {
		got := Alignments(size)
		assert.Len(t, got, 1<<(size-1))
		for _, a := range got {
			sum := 0
			for _, v := range a {
				assert.Positive(t, v)
				sum += v
			}
			assert.Equal(t, size, sum)
		}
	}
	assert.Nil(t, Alignments(0))
}

func TestTeamSizeCombos(t *testing.T) {
	assert.Equal(t, [][]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}, TeamSizeCombos(2, 2, 3))
	assert.Len(t, TeamSizeCombos(3, 2, 11), 1000)
	assert.Nil(t, TeamSizeCombos(2, 5, 4))
}

func TestTacticCombos(t *testing.T) {
	got := TacticCombos([]string{"a", "b"}, 2)
	assert.Equal(t, [][]string{{"a", "a"}, {"a", "b"}, {"b", "a"}, {"b", "b"}}, got)
	assert.Len(t, TacticCombos(tactics.Names(), 3), 11*11*11)
}

func TestDistributions(t *testing.T) {
	got := Distributions([]int{1, 2})
	assert.Equal(t, [][][]int{{{1}, {2}}, {{1}, {1, 1}}}, got)
	assert.Len(t, Distributions([]int{3, 4}), 4*8)
}

func smallSweep() Sweep {
	return Sweep{
		Bounds:        []float64{30},
		Radii:         []float64{3},
		TeamCounts:    []int{2},
		MinTeamSize:   2,
		MaxTeamSize:   2,
		Tactics:       []string{tactics.ShortCarryingName, tactics.LongCarryingName},
		Scenarios:     []match.Scenario{match.Kickoff},
		Trials:        3,
		MaxIterations: 200,
		Seed:          7,
	}
}

func TestSweep_Each(t *testing.T) {
	s := smallSweep()
	assert.Equal(t, 4, s.Count())

	s.AllFormations = true
	s.Scenarios = nil
	// 2 alignments per team of two, 3 scenarios, 4 tactic pairs
	assert.Equal(t, 2*2*3*4, s.Count())

	var idx []int
	require.NoError(t, s.Each(func(c Config) error {
		idx = append(idx, c.Index)
		require.Len(t, c.Formations, 2)
		return nil
	}))
	for i, v := range idx {
		assert.Equal(t, i, v)
	}
}

func TestSweep_Validate(t *testing.T) {
	require.NoError(t, smallSweep().Validate())

	cases := map[string]func(s *Sweep){
		"no bounds":   func(s *Sweep) { s.Bounds = nil },
		"no teams":    func(s *Sweep) { s.TeamCounts = nil },
		"seven teams": func(s *Sweep) { s.TeamCounts = []int{7} },
		"sizes":       func(s *Sweep) { s.MinTeamSize, s.MaxTeamSize = 3, 2 },
		"trials":      func(s *Sweep) { s.Trials = 0 },
		"no tactics":  func(s *Sweep) { s.Tactics = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := smallSweep()
			mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSweep)
		})
	}

	s := smallSweep()
	s.Tactics = []string{"catenaccio"}
	assert.ErrorIs(t, s.Validate(), tactics.ErrUnknownTactic)
}
