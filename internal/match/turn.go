package match

// TurnOutcome records what one possession turn did.
type TurnOutcome struct {
	Decided   Action
	Played    Action
	Pass      PassResult
	Target    *Player
	Attempted bool // a pass left the feet, or a shot/breakthrough was tried
	Goal      bool
	Success   bool
}

// PlayTurn runs the per-turn decision machine for the ball controller:
// select an action, then resolve exactly one branch. A pass without a target
// degrades to a move.
func (m *Match) PlayTurn(s Strategy) TurnOutcome {
	ctl := m.ball
	mates, opps := m.Teammates(ctl), m.Opponents(ctl)
	out := TurnOutcome{Decided: s.DecideAction(m, ctl, mates, opps)}
	out.Played = out.Decided

	if out.Played == ActionPass {
		out.Target = s.SelectPassTarget(m, ctl, mates, opps)
		if out.Target == nil || out.Target == ctl || out.Target.Team != ctl.Team {
			out.Target = nil
			out.Played = ActionMove
		}
	}

	switch out.Played {
	case ActionPass:
		out.Pass = m.Pass(ctl, out.Target)
		out.Attempted = out.Pass.Attempted()
		out.Success = out.Pass == PassCompleted
	case ActionShoot:
		out.Attempted = true
		out.Goal = m.Shoot(ctl)
		out.Success = out.Goal
	case ActionBreakthrough:
		out.Attempted = true
		out.Success = m.Breakthrough(ctl)
	default:
		m.Advance(ctl)
		out.Success = true
	}
	return out
}
