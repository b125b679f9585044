package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacticsim/internal/util"
)

func twoScripted(a, b Action) []Strategy {
	return []Strategy{&scripted{name: "first", action: a}, &scripted{name: "second", action: b}}
}

func TestConfig_Validate(t *testing.T) {
	ok := Config{TeamSizes: []int{2, 2}, Strategies: twoScripted(ActionMove, ActionMove), Bound: 50, AdjacencyRadius: 5}
	require.NoError(t, ok.Validate())

	cases := map[string]func(c *Config){
		"one team":        func(c *Config) { c.TeamSizes = []int{2}; c.Strategies = c.Strategies[:1] },
		"seven teams":     func(c *Config) { c.TeamSizes = make([]int, 7) },
		"strategy count":  func(c *Config) { c.Strategies = c.Strategies[:1] },
		"empty team":      func(c *Config) { c.TeamSizes = []int{0, 2} },
		"nil strategy":    func(c *Config) { c.Strategies = []Strategy{nil, c.Strategies[1]} },
		"formation sum":   func(c *Config) { c.Formations = [][]int{{1, 2}, nil} },
		"formation line":  func(c *Config) { c.Formations = [][]int{{2, 0}, nil} },
		"formation count": func(c *Config) { c.Formations = [][]int{{2}} },
		"bound":           func(c *Config) { c.Bound = 0 },
		"radius":          func(c *Config) { c.AdjacencyRadius = -1 },
		"cap":             func(c *Config) { c.MaxIterations = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := ok
			c.Strategies = append([]Strategy(nil), ok.Strategies...)
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTeamConfiguration))
		})
	}
}

func TestNewMatch_NilGenerator(t *testing.T) {
	_, err := NewMatch(Config{
		TeamSizes: []int{1, 1}, Strategies: twoScripted(ActionMove, ActionMove),
		Bound: 50, AdjacencyRadius: 5,
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidTeamConfiguration)
}

func TestNewMatch_ThreeDAboveFourTeams(t *testing.T) {
	m := newTestMatch(t, []int{1, 1, 1, 1}, 1)
	assert.Zero(t, m.Bounds().Z)
	m = newTestMatch(t, []int{1, 1, 1, 1, 1}, 1)
	assert.Equal(t, 50.0, m.Bounds().Z)
	assert.Equal(t, 5, m.NumGoals())
}

func shootingConfig() Config {
	return Config{
		TeamSizes:       []int{3, 3},
		Strategies:      twoScripted(ActionShoot, ActionPass),
		Scenario:        Kickoff,
		Bound:           50,
		AdjacencyRadius: 5,
		MaxIterations:   500,
	}
}

func TestRunSingle_Deterministic(t *testing.T) {
	run := func() SimResult {
		res, err := RunSingle(&Env{Rng: util.New(42)}, shootingConfig(), true)
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a.Events)
}

func TestRun_ShootersWin(t *testing.T) {
	cfg := shootingConfig()
	shoot := &scripted{name: "shoot", action: ActionShoot}
	cfg.Strategies = []Strategy{shoot, shoot}
	env := &Env{Rng: util.New(3)}
	res, err := RunSingle(env, cfg, false)
	require.NoError(t, err)
	assert.False(t, res.CapReached)
	assert.Equal(t, DefaultGoalsToWin, res.TacticGoals[res.Winner])
	assert.Equal(t, res.Iterations, env.Tick)
	assert.Nil(t, res.Events)
	total := 0
	for _, g := range res.TeamGoals {
		total += g
	}
	// both teams play the same tactic
	assert.Equal(t, DefaultGoalsToWin, total)
	assert.Equal(t, res.TeamGoals[res.WinningTeam.String()]*DefaultGoalPoints, res.TeamPoints[res.WinningTeam.String()])
}

func TestRun_CapTieGoesToFirstTactic(t *testing.T) {
	cfg := shootingConfig()
	cfg.Strategies = twoScripted(ActionMove, ActionMove)
	cfg.MaxIterations = 50
	res, err := RunSingle(&Env{Rng: util.New(1)}, cfg, false)
	require.NoError(t, err)
	assert.True(t, res.CapReached)
	assert.Equal(t, 50, res.Iterations)
	assert.Equal(t, "first", res.Winner)
	assert.Equal(t, TeamID(0), res.WinningTeam)
	assert.Zero(t, res.PassAttempts)
	assert.Greater(t, res.TotalDistance, 0.0)
}

func TestRun_PassAccounting(t *testing.T) {
	cfg := shootingConfig()
	cfg.Strategies = twoScripted(ActionPass, ActionPass)
	cfg.MaxIterations = 300
	res, err := RunSingle(&Env{Rng: util.New(8)}, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, res.PassAttempts, res.SuccessfulPasses+res.FailedPasses)
	assert.Positive(t, res.PassAttempts)
}

func TestRun_GoalResetKeepsIdentities(t *testing.T) {
	cfg := shootingConfig()
	cfg.Strategies = twoScripted(ActionShoot, ActionShoot)
	m, err := NewMatch(cfg, util.New(5))
	require.NoError(t, err)

	ref, err := NewMatch(cfg, util.New(5))
	require.NoError(t, err)
	start := map[string]Vec3{}
	for _, p := range ref.Players() {
		start[p.ID] = p.Pos
	}

	type ident struct {
		p    *Player
		team TeamID
		goal int
	}
	var before []ident
	for _, p := range m.Players() {
		before = append(before, ident{p, p.Team, p.GoalIndex})
	}

	res := m.Run(true)
	resets := 0
	for _, ev := range res.Events {
		if ev.Type == "Reset" {
			resets++
		}
	}
	require.Positive(t, resets)

	// replay the reset and compare with the initial layout
	m.layout()
	for i, p := range m.Players() {
		assert.Same(t, before[i].p, p)
		assert.Equal(t, before[i].team, p.Team)
		assert.Equal(t, before[i].goal, p.GoalIndex)
		assert.Equal(t, start[p.ID], p.Pos)
	}
	assert.Equal(t, PhaseEnded, m.Phase())
}

func TestMarshalPretty(t *testing.T) {
	out := MarshalPretty(SimResult{Winner: "x", TacticGoals: map[string]int{"x": 3}})
	assert.Contains(t, string(out), "\"winner\": \"x\"")
}
