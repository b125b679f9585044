package tactics

import (
	"math"

	"tacticsim/internal/match"
)

const (
	VoronoiName         = "voronoi"
	VoronoiCarryingName = "voronoi_carrying"
)

// Voronoi positions players to maximise the grid-sampled area its team
// controls, and passes by goal distance and marking.
type Voronoi struct {
	Grid int
}

func (Voronoi) Name() string { return VoronoiName }

func (v Voronoi) grid() int {
	if v.Grid <= 0 {
		return match.DefaultGrid
	}
	return v.Grid
}

func (v Voronoi) DecideAction(m *match.Match, ctl *match.Player, mates, opps []*match.Player) match.Action {
	d := m.DistanceToTargetGoal(ctl)
	if d < match.PenaltyAreaRadius*0.8 {
		// a crowded box lowers the urge to shoot; an empty one always invites it
		if n := m.OpponentsInPenaltyArea(ctl); n == 0 || 1/(d*float64(n)) > 0.3 {
			return match.ActionShoot
		}
	}
	target := v.SelectPassTarget(m, ctl, mates, opps)
	if len(m.AdjacentOpponents(ctl)) > 0 {
		if target != nil {
			return match.ActionPass
		}
		return match.ActionBreakthrough
	}
	if target != nil {
		return match.ActionPass
	}
	if d < match.PenaltyAreaRadius*1.2 {
		return match.ActionShoot
	}
	return match.ActionMove
}

func (Voronoi) SelectPassTarget(m *match.Match, ctl *match.Player, mates, _ []*match.Player) *match.Player {
	var best *match.Player
	score := 0.0
	for _, p := range mates {
		if m.PassFeasibility(ctl, p) == 0 {
			continue
		}
		s := m.DistanceToTargetGoal(p) + float64(m.ReceiverPressure(ctl, p))*50
		if best == nil || s < score {
			best, score = p, s
		}
	}
	return best
}

func (v Voronoi) PositionOffBall(m *match.Match, mates, opps []*match.Player) {
	if len(mates) == 0 {
		return
	}
	climb := func(p *match.Player) { m.Move(p, m.BestLocalStep(p, v.grid())) }
	if inPossession(m, mates) {
		attackShape(m, mates, opps, climb)
		return
	}
	ball := m.Ball()
	for _, p := range mates {
		if match.Distance(p.Pos, ball.Pos) < m.AdjacencyRadius()*1.5 {
			m.MoveTowards(p, ball)
			continue
		}
		climb(p)
	}
}

// VoronoiCarrying passes when a mate has clearly more room than the
// carrier, and dribbles otherwise. Room is the sum of squared distances to
// every other player.
type VoronoiCarrying struct{ shape }

func (VoronoiCarrying) Name() string { return VoronoiCarryingName }

func room(m *match.Match, p *match.Player) float64 {
	total := 0.0
	for _, q := range m.Players() {
		if q != p {
			d := match.Distance(p.Pos, q.Pos)
			total += d * d
		}
	}
	return total
}

func (v VoronoiCarrying) DecideAction(m *match.Match, ctl *match.Player, mates, opps []*match.Player) match.Action {
	if finishing(m, ctl) {
		return match.ActionShoot
	}
	if t := v.SelectPassTarget(m, ctl, mates, opps); t != nil && room(m, t) > room(m, ctl)*1.1 {
		return match.ActionPass
	}
	return match.ActionBreakthrough
}

func (VoronoiCarrying) SelectPassTarget(m *match.Match, _ *match.Player, mates, _ []*match.Player) *match.Player {
	var best *match.Player
	most := math.Inf(-1)
	for _, p := range mates {
		if r := room(m, p); r > most {
			best, most = p, r
		}
	}
	return best
}
