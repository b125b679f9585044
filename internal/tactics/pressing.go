package tactics

import "tacticsim/internal/match"

const (
	ActivePressingName = "active_pressing"
	BallControlName    = "ball_control"
)

// ActivePressing presses high: the whole team hunts the ball once it is in
// the opponents' half, and the carrier looks for forward passes.
type ActivePressing struct{}

func (ActivePressing) Name() string { return ActivePressingName }

func (t ActivePressing) DecideAction(m *match.Match, ctl *match.Player, mates, opps []*match.Player) match.Action {
	if m.DistanceToTargetGoal(ctl) < match.PenaltyAreaRadius {
		return match.ActionShoot
	}
	if len(m.AdjacentOpponents(ctl)) > 0 {
		if m.Rand().Float64() < 0.5 {
			return match.ActionBreakthrough
		}
		return match.ActionPass
	}
	if m.DistanceToOwnGoal(ctl) < m.Bounds().Y && t.SelectPassTarget(m, ctl, mates, opps) != nil {
		return match.ActionPass
	}
	return match.ActionMove
}

// SelectPassTarget prefers open mates further forward than the carrier.
func (ActivePressing) SelectPassTarget(m *match.Match, ctl *match.Player, mates, _ []*match.Player) *match.Player {
	mine := m.DistanceToTargetGoal(ctl)
	var best *match.Player
	score := 0.0
	for _, p := range mates {
		d := m.DistanceToTargetGoal(p)
		if d >= mine || m.PassFeasibility(ctl, p) == 0 {
			continue
		}
		s := d + float64(m.ReceiverPressure(ctl, p))*10
		if best == nil || s < score {
			best, score = p, s
		}
	}
	return best
}

func (ActivePressing) PositionOffBall(m *match.Match, mates, opps []*match.Player) {
	if len(mates) == 0 {
		return
	}
	if inPossession(m, mates) {
		attackShape(m, mates, opps, nil)
		return
	}
	ball := m.Ball()
	// the ball is in the opponents' half when it is nearer the goal we attack
	high := match.Distance(ball.Pos, m.TargetGoal(mates[0])) < match.Distance(ball.Pos, m.OwnGoal(mates[0]))
	chaser := closest(mates, ball.Pos)
	for _, p := range mates {
		if high || p == chaser {
			m.MoveTowards(p, ball)
			continue
		}
		m.MoveAwayFrom(p, opps)
	}
}

// BallControl keeps the ball with safe short passes and only shoots from
// close range.
type BallControl struct{}

func (BallControl) Name() string { return BallControlName }

func (t BallControl) DecideAction(m *match.Match, ctl *match.Player, mates, opps []*match.Player) match.Action {
	d := m.DistanceToTargetGoal(ctl)
	if d < match.PenaltyAreaRadius*0.7 && m.OpponentsInPenaltyArea(ctl) < 3 {
		return match.ActionShoot
	}
	if len(m.AdjacentOpponents(ctl)) > 0 {
		return match.ActionPass
	}
	if t.SelectPassTarget(m, ctl, mates, opps) != nil {
		return match.ActionPass
	}
	if d < match.PenaltyAreaRadius*1.5 {
		return match.ActionShoot
	}
	return match.ActionMove
}

// SelectPassTarget picks an unmarked mate weighted toward the goal, and
// falls back to the least marked reachable mate.
func (BallControl) SelectPassTarget(m *match.Match, ctl *match.Player, mates, _ []*match.Player) *match.Player {
	var free, fallback *match.Player
	freeScore, fallbackScore := 0.0, 0.0
	for _, p := range mates {
		if m.PassFeasibility(ctl, p) == 0 {
			continue
		}
		dist := match.Distance(ctl.Pos, p.Pos)
		pressure := m.ReceiverPressure(ctl, p)
		if pressure == 0 {
			s := m.DistanceToTargetGoal(p)*0.7 + dist*0.3
			if free == nil || s < freeScore {
				free, freeScore = p, s
			}
		}
		s := float64(pressure)*100 + dist
		if fallback == nil || s < fallbackScore {
			fallback, fallbackScore = p, s
		}
	}
	if free != nil {
		return free
	}
	return fallback
}

func (BallControl) PositionOffBall(m *match.Match, mates, opps []*match.Player) {
	if len(mates) == 0 {
		return
	}
	if inPossession(m, mates) {
		attackShape(m, mates, opps, nil)
		return
	}
	ball := m.Ball()
	for _, p := range mates {
		if match.Distance(p.Pos, ball.Pos) < m.AdjacencyRadius()*2 {
			m.MoveTowards(p, ball)
			continue
		}
		m.MoveTowardsPoint(p, ball.Pos, match.MoveStep/4)
	}
}
