package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tacticsim/internal/util"
)

// scripted always plays the same action and passes to the first free
// teammate.
type scripted struct {
	name   string
	action Action
	moves  int
}

func (s *scripted) Name() string { return s.name }

func (s *scripted) DecideAction(*Match, *Player, []*Player, []*Player) Action { return s.action }

func (s *scripted) SelectPassTarget(m *Match, ctl *Player, mates, _ []*Player) *Player {
	for _, q := range mates {
		if m.PassFeasibility(ctl, q) > 0 {
			return q
		}
	}
	return nil
}

func (s *scripted) PositionOffBall(m *Match, mates, _ []*Player) {
	for _, p := range mates {
		m.Advance(p)
		s.moves++
	}
}

func newTestMatch(t *testing.T, sizes []int, seed int64) *Match {
	t.Helper()
	strategies := make([]Strategy, len(sizes))
	for i := range strategies {
		strategies[i] = &scripted{name: "move", action: ActionMove}
	}
	m, err := NewMatch(Config{
		TeamSizes:       sizes,
		Strategies:      strategies,
		Scenario:        Kickoff,
		Bound:           50,
		AdjacencyRadius: 5,
	}, util.New(seed))
	require.NoError(t, err)
	return m
}

// park moves every player far apart so a test can place the few it needs.
func park(m *Match) {
	for i, p := range m.players {
		p.Pos = Vec3{X: -95 + float64(i)*9, Y: 48}
	}
}

func give(m *Match, p *Player) { m.setController(p) }
