package match

import (
	"fmt"
	"math"
	"strings"
)

type Scenario int

const (
	Kickoff Scenario = iota
	CornerKick
	GoalKick
)

var Scenarios = []Scenario{GoalKick, CornerKick, Kickoff}

func (s Scenario) String() string {
	switch s {
	case Kickoff:
		return "kickoff"
	case CornerKick:
		return "corner_kick"
	case GoalKick:
		return "goal_kick"
	}
	return fmt.Sprintf("scenario(%d)", int(s))
}

func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case "kickoff", "kick_off":
		return Kickoff, nil
	case "corner_kick", "corner":
		return CornerKick, nil
	case "goal_kick":
		return GoalKick, nil
	}
	return 0, fmt.Errorf("unknown scenario %q", s)
}

// startingTeam is the team that restarts play: the kickoff goes to team B,
// set pieces to team A.
func (s Scenario) startingTeam() int {
	if s == Kickoff {
		return 1
	}
	return 0
}

const (
	cornerRing   = 20.0
	goalKickRing = 15.0
	restartInset = 5.0
)

// layout places every roster for the match scenario (or the explicit
// formations) and hands the ball to the restarting player. Player
// identities are untouched.
func (m *Match) layout() {
	m.setController(nil)
	for ti, t := range m.teams {
		own := m.goal(t.GoalIndex)
		switch {
		case m.formations != nil && m.formations[ti] != nil:
			m.placeFormation(t, own, m.formations[ti])
		case m.scenario == CornerKick:
			placeRing(t, own, cornerRing)
		case m.scenario == GoalKick:
			placeRing(t, own, goalKickRing)
		default:
			m.placeBlocks(t, own)
		}
	}

	taker := m.teams[m.scenario.startingTeam()].Players[0]
	switch m.scenario {
	case Kickoff:
		taker.Pos = Vec3{}
	case CornerKick:
		target := m.TargetGoal(taker)
		axis, _ := m.lateral(m.TargetGoalIndex(taker))
		corner := target.Add(axis.Scale(m.axisBound(axis)))
		taker.Pos = corner.Add(Direction(corner, Vec3{}).Scale(restartInset))
	case GoalKick:
		own := m.goal(taker.GoalIndex)
		taker.Pos = own.Add(Direction(own, Vec3{}).Scale(restartInset))
	}

	for _, p := range m.players {
		p.Pos = m.bounds.Clamp(p.Pos)
	}
	m.setController(taker)
}

// placeBlocks lines a team up in square-ish blocks in its own half.
func (m *Match) placeBlocks(t *Team, own Vec3) {
	n := len(t.Players)
	perLine := int(math.Ceil(math.Sqrt(float64(n))))
	lines := (n + perLine - 1) / perLine
	axis, extent := m.lateral(t.GoalIndex)
	for i, p := range t.Players {
		line, within := i/perLine, i%perLine
		inLine := perLine
		if line == lines-1 && n%perLine != 0 {
			inLine = n % perLine
		}
		depth := own.Scale(float64(line+1) / float64(lines+1))
		p.Pos = depth.Add(axis.Scale(spread(within, inLine, extent)))
	}
}

// placeFormation puts each line group between the own goal (first group)
// and the centre line (last group).
func (m *Match) placeFormation(t *Team, own Vec3, formation []int) {
	axis, extent := m.lateral(t.GoalIndex)
	lines := len(formation)
	i := 0
	for k, count := range formation {
		depth := own.Scale(1 - float64(k+1)/float64(lines+1))
		for w := 0; w < count && i < len(t.Players); w++ {
			t.Players[i].Pos = depth.Add(axis.Scale(spread(w, count, extent)))
			i++
		}
	}
}

func placeRing(t *Team, centre Vec3, radius float64) {
	n := float64(len(t.Players))
	for i, p := range t.Players {
		angle := 2 * math.Pi * float64(i) / n
		p.Pos = centre.Add(Vec3{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
}

// spread is the lateral offset of slot w out of count across [-extent, extent].
func spread(w, count int, extent float64) float64 {
	return -extent + float64(w+1)*2*extent/float64(count+1)
}

// lateral is the axis perpendicular to a goal slot's axis, with the usable
// extent along it.
func (m *Match) lateral(goal int) (Vec3, float64) {
	switch goal {
	case 2, 3:
		return Vec3{Y: 1}, m.bounds.Y * 0.8
	}
	return Vec3{X: 1}, m.bounds.X * 0.8
}

func (m *Match) axisBound(axis Vec3) float64 {
	if axis.Y != 0 {
		return m.bounds.Y
	}
	return m.bounds.X
}
