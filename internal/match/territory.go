package match

// DefaultGrid is the sampling density of the territorial estimate.
const DefaultGrid = 20

// ControlScore estimates the share of the pitch controlled by team: an
// N x N planar grid is laid over the field and each sample goes to its
// nearest player (ties to the earlier player in roster order). When moved is
// not nil its position is taken to be at instead of its real position.
func (m *Match) ControlScore(team TeamID, grid int, moved *Player, at Vec3) float64 {
	if grid <= 0 {
		grid = DefaultGrid
	}
	w, h := 2*m.bounds.X, 2*m.bounds.Y
	owned := 0
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			s := Vec3{
				X: -m.bounds.X + w*float64(i)/float64(grid),
				Y: -m.bounds.Y + h*float64(j)/float64(grid),
			}
			var closest *Player
			best := 0.0
			for _, p := range m.players {
				pos := p.Pos
				if p == moved {
					pos = at
				}
				d := s.Planar(pos)
				if closest == nil || d < best {
					closest, best = p, d
				}
			}
			if closest != nil && closest.Team == team {
				owned++
			}
		}
	}
	return float64(owned) / float64(grid*grid)
}

// BestLocalStep tries the eight unit moves around p and returns the one that
// raises its team's control score the most, or the zero vector.
func (m *Match) BestLocalStep(p *Player, grid int) Vec3 {
	best := m.ControlScore(p.Team, grid, nil, Vec3{})
	var step Vec3
	for dx := -1.0; dx <= 1; dx++ {
		for dy := -1.0; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := Vec3{X: dx, Y: dy}
			at := ClampedMove(p.Pos, d, m.bounds)
			if s := m.ControlScore(p.Team, grid, p, at); s > best {
				best, step = s, d
			}
		}
	}
	return step
}
