package trial

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacticsim/internal/tactics"
)

func newRunner(workers int) *Runner {
	return NewRunner(tactics.NewBook(tactics.Params{Grid: 5}), workers, zerolog.Nop())
}

func TestRunner_Aggregates(t *testing.T) {
	sum, err := newRunner(4).Run(context.Background(), smallSweep())
	require.NoError(t, err)
	assert.False(t, sum.Partial)
	assert.Equal(t, 4, sum.Configs)
	assert.Equal(t, 12, sum.Matches)
	require.Len(t, sum.Stats, 4)

	wins := 0
	for _, st := range sum.Stats {
		// each tactic sits in each slot for two of the four pairings
		assert.Equal(t, 6, st.Trials)
		assert.InDelta(t, float64(st.Wins)/6, st.WinRate, 1e-12)
		assert.GreaterOrEqual(t, st.AvgDistance, 0.0)
		wins += st.Wins
	}
	// exactly one slot wins every match
	assert.Equal(t, sum.Matches, wins)

	st, ok := sum.Lookup(tactics.LongCarryingName, 1)
	require.True(t, ok)
	assert.Equal(t, "B", st.Slot)
	_, ok = sum.Lookup(tactics.VoronoiName, 0)
	assert.False(t, ok)
}

func TestRunner_IndependentOfWorkerCount(t *testing.T) {
	one, err := newRunner(1).Run(context.Background(), smallSweep())
	require.NoError(t, err)
	many, err := newRunner(8).Run(context.Background(), smallSweep())
	require.NoError(t, err)
	assert.Equal(t, one.Matches, many.Matches)
	require.Len(t, many.Stats, len(one.Stats))
	for i, a := range one.Stats {
		b := many.Stats[i]
		// sums are collected in completion order, so float totals may differ in the last bits
		assert.Equal(t, a.Wins, b.Wins, a.Tactic)
		assert.InDelta(t, a.AvgDistance, b.AvgDistance, 1e-9)
		assert.Equal(t, a.AvgSuccessfulPasses, b.AvgSuccessfulPasses)
		assert.Equal(t, a.AvgIterations, b.AvgIterations)
	}

	other := smallSweep()
	other.Seed = 8
	again, err := newRunner(2).Run(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, other.Seed, again.Seed)
}

func TestRunner_SkipsInvalidConfigurations(t *testing.T) {
	s := smallSweep()
	s.Bounds = []float64{0, 30}
	sum, err := newRunner(2).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Skipped)
	assert.Equal(t, 4, sum.Configs)
	assert.Equal(t, 12, sum.Matches)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := newRunner(2).Run(ctx, smallSweep())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	assert.True(t, sum.Partial)
	assert.Less(t, sum.Matches, 12)
}

func TestRunner_RejectsBadSweep(t *testing.T) {
	s := smallSweep()
	s.Trials = 0
	_, err := newRunner(1).Run(context.Background(), s)
	assert.ErrorIs(t, err, ErrInvalidSweep)
}
