package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// DurationTracker measures the wall-clock time of a single request and
// records it into the shared duration histogram on release.
//
// A tracker is a single-use handle: construct it at the start of a
// request via Registry.BeginDurationMeasurement and release it exactly
// once, on every exit path, with defer:
//
//	tracker := reg.BeginDurationMeasurement()
//	defer tracker.Release(ctx)
//
// Release does not guard against being called twice; a second call
// would record a second sample. Defer makes that impossible in normal
// use.
type DurationTracker struct {
	histogram metric.Float64Histogram
	start     time.Time
}

func newDurationTracker(histogram metric.Float64Histogram) *DurationTracker {
	return &DurationTracker{
		histogram: histogram,
		// time.Time carries a monotonic clock reading, so the elapsed
		// computation in Release is immune to wall-clock adjustments.
		start: time.Now(),
	}
}

// Release records the elapsed time since construction, in milliseconds,
// into the duration histogram.
func (t *DurationTracker) Release(ctx context.Context) {
	elapsed := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.histogram.Record(ctx, elapsed)
}
