package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeammatesOpponents_Partition(t *testing.T) {
	for _, sizes := range [][]int{{2, 2}, {11, 7}, {3, 4, 5}, {2, 3, 2, 4, 2, 3}} {
		m := newTestMatch(t, sizes, 1)
		for _, p := range m.Players() {
			seen := map[*Player]int{p: 1}
			for _, q := range m.Teammates(p) {
				assert.Equal(t, p.Team, q.Team)
				seen[q]++
			}
			for _, q := range m.Opponents(p) {
				assert.NotEqual(t, p.Team, q.Team)
				seen[q]++
			}
			assert.Len(t, seen, len(m.Players()))
			for q, n := range seen {
				assert.Equal(t, 1, n, "%s counted %d times", q.ID, n)
			}
		}
	}
}

func TestAdjacency_Recomputed(t *testing.T) {
	m := newTestMatch(t, []int{2, 2}, 1)
	park(m)
	a, b := m.teams[0].Players[0], m.teams[1].Players[0]
	a.Pos = Vec3{}
	b.Pos = Vec3{X: 4}
	assert.Equal(t, []*Player{b}, m.Adjacent(a))
	assert.Equal(t, 1, m.SocialCount(a))

	b.Pos = Vec3{X: 6}
	assert.Empty(t, m.Adjacent(a))
	assert.Equal(t, 0, m.SocialCount(a))
}

func TestSingleBallController(t *testing.T) {
	m := newTestMatch(t, []int{4, 4, 4}, 3)
	count := func() int {
		n := 0
		for _, p := range m.Players() {
			if p.HasBall {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count())
	for _, p := range m.Players() {
		give(m, p)
		assert.Equal(t, 1, count())
		assert.Equal(t, p.Team, m.Possession())
		assert.Same(t, p, m.Ball())
	}
}

func TestTeamID_String(t *testing.T) {
	assert.Equal(t, "A", TeamID(0).String())
	assert.Equal(t, "F", TeamID(5).String())
}
