package tactics

import "tacticsim/internal/match"

const (
	RandomCarryingName = "random_carrying"
	ShortCarryingName  = "short_carrying"
	MiddleCarryingName = "middle_carrying"
	LongCarryingName   = "long_carrying"
)

// carrier is shared by the carrying family: pass to the mate nearest goal.
type carrier struct{ shape }

func (carrier) SelectPassTarget(m *match.Match, _ *match.Player, mates, _ []*match.Player) *match.Player {
	return closestToGoal(m, mates, nil)
}

// RandomCarrying flips a coin between dribbling and passing.
type RandomCarrying struct{ carrier }

func (RandomCarrying) Name() string { return RandomCarryingName }

func (RandomCarrying) DecideAction(m *match.Match, ctl *match.Player, _, _ []*match.Player) match.Action {
	if finishing(m, ctl) {
		return match.ActionShoot
	}
	if m.Rand().Intn(2) == 0 {
		return match.ActionBreakthrough
	}
	return match.ActionPass
}

// ShortCarrying runs with the ball until an opponent closes in, then
// releases it.
type ShortCarrying struct{ carrier }

func (ShortCarrying) Name() string { return ShortCarryingName }

func (ShortCarrying) DecideAction(m *match.Match, ctl *match.Player, _, _ []*match.Player) match.Action {
	if finishing(m, ctl) {
		return match.ActionShoot
	}
	if m.SocialCount(ctl) > 0 {
		return match.ActionPass
	}
	return match.ActionMove
}

// MiddleCarrying takes on the nearest opponent when that opponent stands
// between the carrier and the goal, and passes otherwise.
type MiddleCarrying struct{ carrier }

func (MiddleCarrying) Name() string { return MiddleCarryingName }

func (MiddleCarrying) DecideAction(m *match.Match, ctl *match.Player, _, opps []*match.Player) match.Action {
	if finishing(m, ctl) {
		return match.ActionShoot
	}
	goal := m.TargetGoal(ctl)
	if q := closest(opps, ctl.Pos); q != nil && match.Distance(q.Pos, goal) < match.Distance(ctl.Pos, goal) {
		return match.ActionBreakthrough
	}
	return match.ActionPass
}

// LongCarrying dribbles through up to two markers.
type LongCarrying struct{ carrier }

func (LongCarrying) Name() string { return LongCarryingName }

func (LongCarrying) DecideAction(m *match.Match, ctl *match.Player, _, _ []*match.Player) match.Action {
	if finishing(m, ctl) {
		return match.ActionShoot
	}
	if m.SocialCount(ctl) <= 2 {
		return match.ActionBreakthrough
	}
	return match.ActionPass
}
