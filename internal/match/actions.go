package match

import "math"

const (
	PassInterference  = 0.8
	ShotInterference  = 0.7
	MoveStep          = 0.125
	BreakthroughStep  = 1.0
	PenaltyAreaRadius = 25.0
)

type PassResult int

const (
	// PassBlocked means the feasibility gate failed; nothing was attempted.
	PassBlocked PassResult = iota
	PassCompleted
	PassIntercepted
)

func (r PassResult) String() string {
	switch r {
	case PassCompleted:
		return "completed"
	case PassIntercepted:
		return "intercepted"
	}
	return "blocked"
}

// Attempted reports whether the pass left the passer's feet.
func (r PassResult) Attempted() bool { return r != PassBlocked }

// goal returns a goal slot position; slots are validated when the match is
// built.
func (m *Match) goal(idx int) Vec3 {
	g, _ := GoalCoordinates(idx, m.bounds)
	return g
}

// TargetGoalIndex is the slot after the player's own, round robin over the
// goals in play.
func (m *Match) TargetGoalIndex(p *Player) int { return (p.GoalIndex + 1) % m.numGoals }
func (m *Match) TargetGoal(p *Player) Vec3     { return m.goal(m.TargetGoalIndex(p)) }
func (m *Match) OwnGoal(p *Player) Vec3        { return m.goal(p.GoalIndex) }

func (m *Match) DistanceToTargetGoal(p *Player) float64 { return Distance(p.Pos, m.TargetGoal(p)) }
func (m *Match) DistanceToOwnGoal(p *Player) float64    { return Distance(p.Pos, m.OwnGoal(p)) }

// OpponentsInPenaltyArea counts p's opponents within the penalty radius of
// the goal p attacks.
func (m *Match) OpponentsInPenaltyArea(p *Player) int {
	g := m.TargetGoal(p)
	n := 0
	for _, q := range m.Opponents(p) {
		if Distance(q.Pos, g) < PenaltyAreaRadius {
			n++
		}
	}
	return n
}

func SocialRadius(passer, receiver *Player) float64 {
	return math.Pow(Distance(passer.Pos, receiver.Pos), 0.25)
}

// ReceiverPressure counts the receiver's opponents within the social radius
// of the pass.
func (m *Match) ReceiverPressure(passer, receiver *Player) int {
	r := SocialRadius(passer, receiver)
	n := 0
	for _, q := range m.Opponents(receiver) {
		if Distance(receiver.Pos, q.Pos) <= r {
			n++
		}
	}
	return n
}

// PassFeasibility is the chance the pass gate opens: 1 when the receiver is
// free, 0.5 with one marker, 0 otherwise. No random draw is made.
func (m *Match) PassFeasibility(passer, receiver *Player) float64 {
	switch m.ReceiverPressure(passer, receiver) {
	case 0:
		return 1
	case 1:
		return 0.5
	}
	return 0
}

// CanPass evaluates the gate, drawing from the match generator when the
// receiver has exactly one marker.
func (m *Match) CanPass(passer, receiver *Player) bool {
	switch f := m.PassFeasibility(passer, receiver); f {
	case 1:
		return true
	case 0:
		return false
	default:
		return m.rng.Float64() < f
	}
}

// PassProbability is the success chance of an attempted pass: 0.8 per
// opponent of the passer lying in the passing lane.
func (m *Match) PassProbability(passer, receiver *Player) float64 {
	p := 1.0
	for _, q := range m.Opponents(passer) {
		if DistanceToSegment(q.Pos, passer.Pos, receiver.Pos) < m.radius {
			p *= PassInterference
		}
	}
	return p
}

func (m *Match) Pass(passer, receiver *Player) PassResult {
	if receiver == nil || receiver == passer || !m.CanPass(passer, receiver) {
		return PassBlocked
	}
	if m.rng.Float64() < m.PassProbability(passer, receiver) {
		m.setController(receiver)
		m.SuccessfulPasses++
		return PassCompleted
	}
	if q := nearest(receiver.Pos, m.Opponents(passer), nil); q != nil {
		m.setController(q)
	}
	m.FailedPasses++
	return PassIntercepted
}

// ShotProbability falls linearly with the distance to the target goal over
// the field length and by 0.7 per opponent in the shooting lane. Shots from
// beyond the field length never score.
func (m *Match) ShotProbability(shooter *Player) float64 {
	g := m.TargetGoal(shooter)
	p := 1 - Distance(shooter.Pos, g)/(2*m.bounds.X)
	for _, q := range m.Opponents(shooter) {
		if DistanceToSegment(q.Pos, shooter.Pos, g) < m.radius {
			p *= ShotInterference
		}
	}
	return math.Max(0, math.Min(1, p))
}

// Shoot reports whether the shot scored. A miss is a loose ball: it goes to
// whoever other than the shooter stands nearest the target goal, teammates
// included.
func (m *Match) Shoot(shooter *Player) bool {
	if m.rng.Float64() < m.ShotProbability(shooter) {
		return true
	}
	if q := nearest(m.TargetGoal(shooter), m.players, shooter); q != nil {
		m.setController(q)
	}
	return false
}

// CoveringDefender reports whether some opponent is closer to the goal it
// defends than p is to the goal p attacks.
func (m *Match) CoveringDefender(p *Player) bool {
	mine := m.DistanceToTargetGoal(p)
	for _, q := range m.Opponents(p) {
		if m.DistanceToOwnGoal(q) < mine {
			return true
		}
	}
	return false
}

// Breakthrough tries to dribble past the defence. With a covering defender
// the ball is lost half the time to the nearest adjacent opponent;
// otherwise the carrier advances one step toward the target goal.
func (m *Match) Breakthrough(p *Player) bool {
	if m.CoveringDefender(p) && m.rng.Float64() < 0.5 {
		if q := nearest(p.Pos, m.AdjacentOpponents(p), nil); q != nil {
			m.setController(q)
			return false
		}
	}
	m.Move(p, Direction(p.Pos, m.TargetGoal(p)).Scale(BreakthroughStep))
	return true
}

// Advance walks p one MoveStep toward the goal it attacks.
func (m *Match) Advance(p *Player) { m.MoveTowardsPoint(p, m.TargetGoal(p), MoveStep) }

// Move applies a clamped displacement and books the distance actually
// covered.
func (m *Match) Move(p *Player, delta Vec3) {
	next := ClampedMove(p.Pos, delta, m.bounds)
	m.TotalDistance += Distance(p.Pos, next)
	p.Pos = next
}

func (m *Match) MoveTowardsPoint(p *Player, target Vec3, step float64) {
	m.Move(p, Direction(p.Pos, target).Scale(step))
}

func (m *Match) MoveTowards(p, target *Player) { m.MoveTowardsPoint(p, target.Pos, MoveStep) }

// MoveAwayFrom pushes p away from the given players with inverse-distance
// weighting.
func (m *Match) MoveAwayFrom(p *Player, others []*Player) {
	var push Vec3
	for _, q := range others {
		d := p.Pos.Sub(q.Pos)
		l := d.Len()
		if l == 0 {
			continue
		}
		push = push.Add(d.Scale(1 / (l * l)))
	}
	if push.IsZero() {
		return
	}
	m.Move(p, push.Norm().Scale(MoveStep))
}

// BlockPassingLane steps p toward the midpoint of the most reachable lane
// from the carrier, or toward the carrier when no lane is open.
func (m *Match) BlockPassingLane(p, carrier *Player) {
	var target *Player
	best := 0.0
	for _, q := range m.Teammates(carrier) {
		if m.PassFeasibility(carrier, q) == 0 {
			continue
		}
		d := Distance(p.Pos, q.Pos)
		if target == nil || d < best {
			target, best = q, d
		}
	}
	if target == nil {
		m.MoveTowards(p, carrier)
		return
	}
	mid := carrier.Pos.Add(target.Pos).Scale(0.5)
	m.MoveTowardsPoint(p, mid, MoveStep)
}
