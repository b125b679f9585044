package match

import "fmt"

type Action int

const (
	ActionMove Action = iota
	ActionPass
	ActionShoot
	ActionBreakthrough
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionPass:
		return "pass"
	case ActionShoot:
		return "shoot"
	case ActionBreakthrough:
		return "breakthrough"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Strategy is a team tactic. DecideAction and SelectPassTarget must not move
// players or the ball; a tactic that needs randomness draws from m.Rand() so
// that a seeded match stays reproducible. PositionOffBall moves the given
// players (never the ball controller) and has no other effect.
type Strategy interface {
	Name() string
	DecideAction(m *Match, ctl *Player, mates, opps []*Player) Action
	SelectPassTarget(m *Match, ctl *Player, mates, opps []*Player) *Player
	PositionOffBall(m *Match, mates, opps []*Player)
}
