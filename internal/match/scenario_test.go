package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacticsim/internal/util"
)

func inside(b Bounds, p Vec3) bool {
	return math.Abs(p.X) <= b.X && math.Abs(p.Y) <= b.Y && math.Abs(p.Z) <= b.Z
}

func TestLayout_AllScenarios(t *testing.T) {
	for _, sc := range Scenarios {
		for _, sizes := range [][]int{{1, 1}, {11, 11}, {5, 3, 7}, {2, 2, 2, 2, 2, 2}} {
			strategies := make([]Strategy, len(sizes))
			for i := range strategies {
				strategies[i] = &scripted{name: "move"}
			}
			m, err := NewMatch(Config{
				TeamSizes: sizes, Strategies: strategies, Scenario: sc,
				Bound: 30, AdjacencyRadius: 3,
			}, util.New(1))
			require.NoError(t, err)

			holders := 0
			for _, p := range m.Players() {
				assert.True(t, inside(m.Bounds(), p.Pos), "%s %s out of bounds", sc, p)
				if p.HasBall {
					holders++
				}
			}
			assert.Equal(t, 1, holders)
			assert.Equal(t, m.Ball().Team, m.Possession())
			if sc == Kickoff {
				assert.Equal(t, TeamID(1), m.Possession())
				assert.Equal(t, Vec3{}, m.Ball().Pos)
			} else {
				assert.Equal(t, TeamID(0), m.Possession())
			}
		}
	}
}

func TestLayout_Formation(t *testing.T) {
	m, err := NewMatch(Config{
		TeamSizes:       []int{4, 4},
		Strategies:      []Strategy{&scripted{name: "a"}, &scripted{name: "b"}},
		Formations:      [][]int{{1, 2, 1}, nil},
		Scenario:        GoalKick,
		Bound:           50,
		AdjacencyRadius: 5,
	}, util.New(1))
	require.NoError(t, err)
	a := m.Teams()[0].Players
	// the first line sits nearest the own goal at y=-50
	assert.Less(t, a[1].Pos.Y, a[3].Pos.Y)
	assert.Equal(t, a[1].Pos.Y, a[2].Pos.Y)
}

func TestParseScenario(t *testing.T) {
	for _, sc := range Scenarios {
		got, err := ParseScenario(sc.String())
		require.NoError(t, err)
		assert.Equal(t, sc, got)
	}
	got, err := ParseScenario("Corner-Kick")
	require.NoError(t, err)
	assert.Equal(t, CornerKick, got)
	_, err = ParseScenario("penalty")
	assert.Error(t, err)
}
