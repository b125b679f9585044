package trial

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "tacticsim/internal/trial"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	matches    metric.Int64Counter
	capped     metric.Int64Counter
	iterations metric.Int64Histogram
	pending    metric.Int64ObservableGauge
}

// newInstruments uses the global meter provider, a no-op unless the
// process installs one.
func newInstruments() (*instruments, error) {
	m := meter()
	in := &instruments{}
	var err error
	in.matches, err = m.Int64Counter(
		"trial.matches",
		metric.WithDescription("Matches played"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating matches counter: %w", err)
	}
	in.capped, err = m.Int64Counter(
		"trial.capped",
		metric.WithDescription("Matches ended by the iteration cap"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating capped counter: %w", err)
	}
	in.iterations, err = m.Int64Histogram(
		"trial.iterations",
		metric.WithDescription("Ticks played per match"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating iterations histogram: %w", err)
	}
	in.pending, err = m.Int64ObservableGauge(
		"trial.jobs.pending",
		metric.WithDescription("Queued matches not yet played"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pending gauge: %w", err)
	}
	return in, nil
}

// observePending reports the queue depth until the registration is
// unregistered.
func (in *instruments) observePending(pending *atomic.Int64) (metric.Registration, error) {
	return meter().RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(in.pending, pending.Load())
			return nil
		},
		in.pending,
	)
}

func (in *instruments) record(ctx context.Context, cfg Config, iterations int, capped bool) {
	attrs := metric.WithAttributes(
		attribute.String("scenario", cfg.Scenario.String()),
		attribute.Int("teams", len(cfg.TeamSizes)),
	)
	in.matches.Add(ctx, 1, attrs)
	in.iterations.Record(ctx, int64(iterations), attrs)
	if capped {
		in.capped.Add(ctx, 1, attrs)
	}
}
