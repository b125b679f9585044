package tactics

import "tacticsim/internal/match"

const (
	ShortPassName  = "short_pass"
	LongPassName   = "long_pass"
	RandomPassName = "random_pass"
)

func passOrShoot(m *match.Match, ctl *match.Player) match.Action {
	if finishing(m, ctl) {
		return match.ActionShoot
	}
	return match.ActionPass
}

// ShortPass only plays to unmarked mates, the one nearest goal first.
type ShortPass struct{ shape }

func (ShortPass) Name() string { return ShortPassName }

func (ShortPass) DecideAction(m *match.Match, ctl *match.Player, _, _ []*match.Player) match.Action {
	return passOrShoot(m, ctl)
}

func (ShortPass) SelectPassTarget(m *match.Match, _ *match.Player, mates, _ []*match.Player) *match.Player {
	return closestToGoal(m, mates, func(p *match.Player) bool { return m.SocialCount(p) == 0 })
}

// LongPass accepts receivers with a single marker.
type LongPass struct{ shape }

func (LongPass) Name() string { return LongPassName }

func (LongPass) DecideAction(m *match.Match, ctl *match.Player, _, _ []*match.Player) match.Action {
	return passOrShoot(m, ctl)
}

func (LongPass) SelectPassTarget(m *match.Match, _ *match.Player, mates, _ []*match.Player) *match.Player {
	return closestToGoal(m, mates, func(p *match.Player) bool { return m.SocialCount(p) < 2 })
}

// RandomPass plays to a uniformly drawn unmarked mate.
type RandomPass struct{ shape }

func (RandomPass) Name() string { return RandomPassName }

func (RandomPass) DecideAction(m *match.Match, ctl *match.Player, _, _ []*match.Player) match.Action {
	return passOrShoot(m, ctl)
}

func (RandomPass) SelectPassTarget(m *match.Match, _ *match.Player, mates, _ []*match.Player) *match.Player {
	var free []*match.Player
	for _, p := range mates {
		if m.SocialCount(p) == 0 {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return nil
	}
	return free[m.Rand().Intn(len(free))]
}
