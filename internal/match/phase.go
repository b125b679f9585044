package match

type Phase int

const (
	PhaseAwaitingKickoff Phase = iota
	PhaseInProgress
	PhaseGoalScored
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingKickoff:
		return "awaiting_kickoff"
	case PhaseInProgress:
		return "in_progress"
	case PhaseGoalScored:
		return "goal_scored"
	}
	return "ended"
}

var phaseEdges = map[Phase][]Phase{
	PhaseAwaitingKickoff: {PhaseInProgress},
	PhaseInProgress:      {PhaseGoalScored, PhaseEnded},
	PhaseGoalScored:      {PhaseInProgress, PhaseEnded},
}

// Phaser tracks the match lifecycle and refuses transitions the lifecycle
// does not allow.
type Phaser struct {
	Emit  func(Event)
	phase Phase
}

func NewPhaser(emit func(Event)) *Phaser {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Phaser{Emit: emit}
}

func (ph *Phaser) Current() Phase { return ph.phase }

func (ph *Phaser) Enter(to Phase, tick int) bool {
	for _, next := range phaseEdges[ph.phase] {
		if next == to {
			from := ph.phase
			ph.phase = to
			ph.Emit(Event{T: tick, Type: "Phase", Payload: map[string]any{
				"from": from.String(), "to": to.String(),
			}})
			return true
		}
	}
	return false
}
