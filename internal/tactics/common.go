package tactics

import (
	"sort"

	"tacticsim/internal/match"
)

// inPossession reports whether the players belong to the team on the ball.
func inPossession(m *match.Match, players []*match.Player) bool {
	return len(players) > 0 && players[0].Team == m.Possession()
}

// forwards returns the n players nearest the goal they attack, nearest
// first. Ties keep roster order.
func forwards(m *match.Match, players []*match.Player, n int) []*match.Player {
	out := append([]*match.Player(nil), players...)
	sort.SliceStable(out, func(i, j int) bool {
		return m.DistanceToTargetGoal(out[i]) < m.DistanceToTargetGoal(out[j])
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func contains(ps []*match.Player, p *match.Player) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// closest returns the player nearest pos, ties to roster order.
func closest(ps []*match.Player, pos match.Vec3) *match.Player {
	var best *match.Player
	d := 0.0
	for _, p := range ps {
		if dd := match.Distance(p.Pos, pos); best == nil || dd < d {
			best, d = p, dd
		}
	}
	return best
}

// closestToGoal returns the mate nearest the goal it attacks among those
// accepted by keep (all when keep is nil).
func closestToGoal(m *match.Match, mates []*match.Player, keep func(*match.Player) bool) *match.Player {
	var best *match.Player
	d := 0.0
	for _, p := range mates {
		if keep != nil && !keep(p) {
			continue
		}
		if dd := m.DistanceToTargetGoal(p); best == nil || dd < d {
			best, d = p, dd
		}
	}
	return best
}

// finishing is the shot every tactic without its own shooting rule takes
// inside the penalty area.
func finishing(m *match.Match, ctl *match.Player) bool {
	return m.DistanceToTargetGoal(ctl) < match.PenaltyAreaRadius
}

// attackShape pushes the two most advanced mates forward and spreads the
// rest away from the opponents.
func attackShape(m *match.Match, mates, opps []*match.Player, rest func(*match.Player)) {
	front := forwards(m, mates, 2)
	for _, p := range mates {
		if contains(front, p) {
			m.Advance(p)
			continue
		}
		if rest != nil {
			rest(p)
			continue
		}
		m.MoveAwayFrom(p, opps)
	}
}

// shape is the off-ball movement shared by the simpler tactics: the
// attacking shape on the ball, otherwise the nearest player chases the ball
// while the others cut passing lanes.
type shape struct{}

func (shape) PositionOffBall(m *match.Match, mates, opps []*match.Player) {
	if len(mates) == 0 {
		return
	}
	if inPossession(m, mates) {
		attackShape(m, mates, opps, nil)
		return
	}
	ball := m.Ball()
	chaser := closest(mates, ball.Pos)
	for _, p := range mates {
		if p == chaser {
			m.MoveTowards(p, ball)
			continue
		}
		m.BlockPassingLane(p, ball)
	}
}
