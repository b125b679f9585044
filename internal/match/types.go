package match

import "fmt"

type Event struct {
	T       int            `json:"t" yaml:"t"`
	Type    string         `json:"type" yaml:"type"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// TeamID is the roster slot of a team: 0 is team "A".
type TeamID int

func (t TeamID) String() string {
	if t < 0 || t >= 26 {
		return fmt.Sprintf("T%d", int(t))
	}
	return string(rune('A' + int(t)))
}

type Player struct {
	ID        string
	Team      TeamID
	Index     int // position within the roster, stable for the match
	GoalIndex int // goal slot the player's team defends
	Pos       Vec3
	HasBall   bool
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%.1f,%.1f,%.1f)", p.ID, p.Pos.X, p.Pos.Y, p.Pos.Z)
}

type Team struct {
	ID        TeamID
	GoalIndex int
	Strategy  Strategy
	Players   []*Player
}

func newTeam(id TeamID, size, goal int, s Strategy) *Team {
	t := &Team{ID: id, GoalIndex: goal, Strategy: s, Players: make([]*Player, size)}
	for i := range t.Players {
		t.Players[i] = &Player{
			ID:        fmt.Sprintf("%s%d", id, i),
			Team:      id,
			Index:     i,
			GoalIndex: goal,
		}
	}
	return t
}
