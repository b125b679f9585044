package match

func (m *Match) Teams() []*Team     { return m.teams }
func (m *Match) Players() []*Player { return m.players }
func (m *Match) Team(id TeamID) *Team {
	if id < 0 || int(id) >= len(m.teams) {
		return nil
	}
	return m.teams[id]
}

// Ball returns the current ball controller, nil only while positions are
// being reset.
func (m *Match) Ball() *Player { return m.ball }

// Possession is the index of the team whose player controls the ball.
func (m *Match) Possession() TeamID { return TeamID(m.possession) }

// Teammates returns p's team without p, in roster order.
func (m *Match) Teammates(p *Player) []*Player {
	t := m.Team(p.Team)
	if t == nil {
		return nil
	}
	out := make([]*Player, 0, len(t.Players)-1)
	for _, q := range t.Players {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

// Opponents returns every player of every other team, in roster order.
func (m *Match) Opponents(p *Player) []*Player {
	out := make([]*Player, 0, len(m.players))
	for _, q := range m.players {
		if q.Team != p.Team {
			out = append(out, q)
		}
	}
	return out
}

// Adjacent is the set of players within the adjacency radius of p. It is
// recomputed on every call since positions change every tick.
func (m *Match) Adjacent(p *Player) []*Player {
	var out []*Player
	for _, q := range m.players {
		if q != p && Distance(p.Pos, q.Pos) <= m.radius {
			out = append(out, q)
		}
	}
	return out
}

func (m *Match) AdjacentOpponents(p *Player) []*Player {
	var out []*Player
	for _, q := range m.players {
		if q.Team != p.Team && Distance(p.Pos, q.Pos) <= m.radius {
			out = append(out, q)
		}
	}
	return out
}

// SocialCount is the number of opponents marking p, i.e. within the
// adjacency radius.
func (m *Match) SocialCount(p *Player) int { return len(m.AdjacentOpponents(p)) }

// setController moves the ball to p and keeps the possession index in step.
// A nil p leaves the ball dead (only during resets).
func (m *Match) setController(p *Player) {
	if m.ball != nil {
		m.ball.HasBall = false
	}
	m.ball = p
	if p == nil {
		return
	}
	p.HasBall = true
	m.possession = int(p.Team)
}

// nearest returns the candidate closest to target, skipping exclude. Ties
// go to the earlier candidate.
func nearest(target Vec3, candidates []*Player, exclude *Player) *Player {
	var best *Player
	bestD := 0.0
	for _, q := range candidates {
		if q == exclude {
			continue
		}
		d := Distance(target, q.Pos)
		if best == nil || d < bestD {
			best, bestD = q, d
		}
	}
	return best
}
