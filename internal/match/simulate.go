package match

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

const (
	DefaultMaxIterations = 1000
	DefaultGoalsToWin    = 3
	DefaultGoalPoints    = 10
	MinTeams             = 2
)

type Config struct {
	TeamSizes       []int
	Strategies      []Strategy
	Formations      [][]int // optional; nil entries fall back to the scenario layout
	Scenario        Scenario
	Bound           float64
	AdjacencyRadius float64
	MaxIterations   int
	GoalsToWin      int
	GoalPoints      int
	ThreeD          bool // forced on for more than four teams
}

func (c *Config) withDefaults() {
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.GoalsToWin == 0 {
		c.GoalsToWin = DefaultGoalsToWin
	}
	if c.GoalPoints == 0 {
		c.GoalPoints = DefaultGoalPoints
	}
	if len(c.TeamSizes) > 4 {
		c.ThreeD = true
	}
}

func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidTeamConfiguration)
	}
	n := len(c.TeamSizes)
	if n < MinTeams || n > MaxGoals {
		return bad("%d teams, want %d..%d", n, MinTeams, MaxGoals)
	}
	if len(c.Strategies) != n {
		return bad("%d strategies for %d teams", len(c.Strategies), n)
	}
	for i, size := range c.TeamSizes {
		if size < 1 {
			return bad("team %s has size %d", TeamID(i), size)
		}
		if c.Strategies[i] == nil {
			return bad("team %s has no strategy", TeamID(i))
		}
	}
	if c.Formations != nil {
		if len(c.Formations) != n {
			return bad("%d formations for %d teams", len(c.Formations), n)
		}
		for i, f := range c.Formations {
			if f == nil {
				continue
			}
			sum := 0
			for _, line := range f {
				if line < 1 {
					return bad("team %s formation %v has an empty line", TeamID(i), f)
				}
				sum += line
			}
			if sum != c.TeamSizes[i] {
				return bad("team %s formation %v does not add up to %d", TeamID(i), f, c.TeamSizes[i])
			}
		}
	}
	if c.Bound <= 0 || c.AdjacencyRadius <= 0 {
		return bad("bound %.2f, adjacency radius %.2f", c.Bound, c.AdjacencyRadius)
	}
	if c.MaxIterations < 0 || c.GoalsToWin < 0 {
		return bad("iteration cap %d, goals to win %d", c.MaxIterations, c.GoalsToWin)
	}
	return nil
}

type Env struct {
	Tick int
	Rng  *rand.Rand
}

type SimResult struct {
	Winner           string         `json:"winner" yaml:"winner"`
	WinningTeam      TeamID         `json:"winning_team" yaml:"winning_team"`
	Iterations       int            `json:"iterations" yaml:"iterations"`
	CapReached       bool           `json:"cap_reached" yaml:"cap_reached"`
	TacticGoals      map[string]int `json:"tactic_goals" yaml:"tactic_goals"`
	TeamGoals        map[string]int `json:"team_goals" yaml:"team_goals"`
	TeamPoints       map[string]int `json:"team_points" yaml:"team_points"`
	SuccessfulPasses int            `json:"successful_passes" yaml:"successful_passes"`
	FailedPasses     int            `json:"failed_passes" yaml:"failed_passes"`
	PassAttempts     int            `json:"pass_attempts" yaml:"pass_attempts"`
	TotalDistance    float64        `json:"total_distance" yaml:"total_distance"`
	Events           []Event        `json:"events,omitempty" yaml:"events,omitempty"`
}

type Match struct {
	cfg        Config
	bounds     Bounds
	radius     float64
	numGoals   int
	scenario   Scenario
	formations [][]int
	teams      []*Team
	players    []*Player
	ball       *Player
	possession int
	rng        *rand.Rand
	emit       func(Event)
	phaser     *Phaser
	tick       int

	SuccessfulPasses int
	FailedPasses     int
	PassAttempts     int
	TotalDistance    float64
}

// NewMatch validates cfg, builds the rosters and lays them out for kickoff.
// All randomness of the match is drawn from rng.
func NewMatch(cfg Config, rng *rand.Rand) (*Match, error) {
	cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random generator: %w", ErrInvalidTeamConfiguration)
	}
	m := &Match{
		cfg:        cfg,
		bounds:     Bounds{X: HalfLength, Y: cfg.Bound},
		radius:     cfg.AdjacencyRadius,
		numGoals:   len(cfg.TeamSizes),
		scenario:   cfg.Scenario,
		formations: cfg.Formations,
		rng:        rng,
		emit:       func(Event) {},
	}
	if cfg.ThreeD {
		m.bounds.Z = cfg.Bound
	}
	m.phaser = NewPhaser(func(ev Event) { m.emit(ev) })
	for i, size := range cfg.TeamSizes {
		goal := i % m.numGoals
		if _, err := GoalCoordinates(goal, m.bounds); err != nil {
			return nil, err
		}
		t := newTeam(TeamID(i), size, goal, cfg.Strategies[i])
		m.teams = append(m.teams, t)
		m.players = append(m.players, t.Players...)
	}
	m.layout()
	return m, nil
}

func (m *Match) Rand() *rand.Rand         { return m.rng }
func (m *Match) Bounds() Bounds           { return m.bounds }
func (m *Match) AdjacencyRadius() float64 { return m.radius }
func (m *Match) NumGoals() int            { return m.numGoals }
func (m *Match) Tick() int                { return m.tick }
func (m *Match) Phase() Phase             { return m.phaser.Current() }

// RunSingle plays one match to its end. With record set the result carries
// the full event log.
func RunSingle(env *Env, cfg Config, record bool) (SimResult, error) {
	m, err := NewMatch(cfg, env.Rng)
	if err != nil {
		return SimResult{}, err
	}
	res := m.Run(record)
	env.Tick = res.Iterations
	return res, nil
}

func (m *Match) Run(record bool) SimResult {
	var events []Event
	if record {
		m.emit = func(ev Event) { events = append(events, ev) }
	}

	tacticGoals := map[string]int{}
	teamGoals := make([]int, len(m.teams))
	for _, t := range m.teams {
		tacticGoals[t.Strategy.Name()] += 0
	}

	m.phaser.Enter(PhaseInProgress, 0)
	m.emit(Event{T: 0, Type: "Kickoff", Payload: map[string]any{
		"scenario": m.scenario.String(), "player": m.ball.ID,
	}})

	winner, winningTeam := "", TeamID(-1)
	iterations := 0
	for m.tick = 0; m.tick < m.cfg.MaxIterations; m.tick++ {
		iterations = m.tick + 1
		attacking := m.teams[m.possession]
		ctl := m.ball
		attacking.Strategy.PositionOffBall(m, m.Teammates(ctl), m.Opponents(ctl))
		out := m.PlayTurn(attacking.Strategy)
		if out.Played == ActionPass && out.Attempted {
			m.PassAttempts++
		}
		m.emitTurn(ctl, out)

		if out.Goal {
			name := attacking.Strategy.Name()
			tacticGoals[name]++
			teamGoals[attacking.ID]++
			m.phaser.Enter(PhaseGoalScored, m.tick)
			m.emit(Event{T: m.tick, Type: "Goal", Payload: map[string]any{
				"team": attacking.ID.String(), "tactic": name, "scorer": ctl.ID,
				"team_goals": teamGoals[attacking.ID], "tactic_goals": tacticGoals[name],
			}})
			if tacticGoals[name] >= m.cfg.GoalsToWin {
				winner, winningTeam = name, attacking.ID
				break
			}
			m.layout()
			m.emit(Event{T: m.tick, Type: "Reset", Payload: map[string]any{"player": m.ball.ID}})
			m.phaser.Enter(PhaseInProgress, m.tick)
			continue
		}

		for _, t := range m.teams {
			if t != attacking {
				t.Strategy.PositionOffBall(m, m.offBall(t), m.opponentsOf(t))
			}
		}
	}

	capped := winner == ""
	if capped {
		winner, winningTeam = m.leader(tacticGoals, teamGoals)
	}
	m.phaser.Enter(PhaseEnded, m.tick)

	res := SimResult{
		Winner:           winner,
		WinningTeam:      winningTeam,
		Iterations:       iterations,
		CapReached:       capped,
		TacticGoals:      tacticGoals,
		TeamGoals:        map[string]int{},
		TeamPoints:       map[string]int{},
		SuccessfulPasses: m.SuccessfulPasses,
		FailedPasses:     m.FailedPasses,
		PassAttempts:     m.PassAttempts,
		TotalDistance:    m.TotalDistance,
	}
	for i, g := range teamGoals {
		res.TeamGoals[TeamID(i).String()] = g
		res.TeamPoints[TeamID(i).String()] = g * m.cfg.GoalPoints
	}
	if record {
		res.Events = events
	}
	return res
}

// leader picks the tactic with most goals, ties to the first in roster
// order, and within it the team with most goals, ties to the lowest slot.
func (m *Match) leader(tacticGoals map[string]int, teamGoals []int) (string, TeamID) {
	name, best := "", -1
	for _, t := range m.teams {
		if g := tacticGoals[t.Strategy.Name()]; g > best {
			name, best = t.Strategy.Name(), g
		}
	}
	team, most := TeamID(-1), -1
	for _, t := range m.teams {
		if t.Strategy.Name() == name && teamGoals[t.ID] > most {
			team, most = t.ID, teamGoals[t.ID]
		}
	}
	return name, team
}

func (m *Match) offBall(t *Team) []*Player {
	out := make([]*Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p != m.ball {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) opponentsOf(t *Team) []*Player {
	out := make([]*Player, 0, len(m.players))
	for _, p := range m.players {
		if p.Team != t.ID {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) emitTurn(ctl *Player, out TurnOutcome) {
	payload := map[string]any{
		"player":  ctl.ID,
		"decided": out.Decided.String(),
		"played":  out.Played.String(),
		"success": out.Success,
		"ball":    m.ball.ID,
	}
	if out.Target != nil {
		payload["target"] = out.Target.ID
		payload["pass"] = out.Pass.String()
	}
	m.emit(Event{T: m.tick, Type: "Turn", Payload: payload})
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
