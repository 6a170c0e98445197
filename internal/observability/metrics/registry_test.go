package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestRegistry wires a registry to a manual reader so tests can
// inspect recorded measurements directly.
func newTestRegistry(t *testing.T) (*Registry, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Errorf("provider shutdown: %v", err)
		}
	})

	reg, err := NewRegistry(provider)
	require.NoError(t, err)
	return reg, reader
}

// collectMetric gathers all measurements and returns the data for the
// named instrument under the WeatherApp.Api scope.
func collectMetric(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, scope := range rm.ScopeMetrics {
		if scope.Scope.Name != ScopeName {
			continue
		}
		for _, m := range scope.Metrics {
			if m.Name == name {
				return m
			}
		}
	}
	t.Fatalf("metric %q not found under scope %q", name, ScopeName)
	return metricdata.Metrics{}
}

func counterValue(t *testing.T, reader *sdkmetric.ManualReader) int64 {
	t.Helper()

	m := collectMetric(t, reader, requestCountName)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "counter data type = %T", m.Data)
	require.True(t, sum.IsMonotonic)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func histogramData(t *testing.T, reader *sdkmetric.ManualReader) metricdata.HistogramDataPoint[float64] {
	t.Helper()

	m := collectMetric(t, reader, requestDurationName)
	assert.Equal(t, "ms", m.Unit)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "histogram data type = %T", m.Data)
	require.Len(t, hist.DataPoints, 1)
	return hist.DataPoints[0]
}

func TestIncrementRequestCount(t *testing.T) {
	reg, reader := newTestRegistry(t)

	reg.IncrementRequestCount(context.Background())

	assert.Equal(t, int64(1), counterValue(t, reader))
}

func TestIncrementRequestCount_Concurrent(t *testing.T) {
	reg, reader := newTestRegistry(t)

	const (
		workers   = 50
		perWorker = 40
		wantTotal = workers * perWorker
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := 0; p < perWorker; p++ {
				reg.IncrementRequestCount(context.Background())
			}
		}()
	}
	wg.Wait()

	// No lost increments under concurrency.
	assert.Equal(t, int64(wantTotal), counterValue(t, reader))
}

func TestBeginDurationMeasurement_RecordsOneSample(t *testing.T) {
	reg, reader := newTestRegistry(t)

	tracker := reg.BeginDurationMeasurement()
	time.Sleep(5 * time.Millisecond)
	tracker.Release(context.Background())

	dp := histogramData(t, reader)
	assert.Equal(t, uint64(1), dp.Count, "exactly one sample per tracker")

	// Value is in milliseconds and at least the time slept, minus a
	// small tolerance for coarse clocks.
	minVal, ok := dp.Min.Value()
	require.True(t, ok)
	assert.GreaterOrEqual(t, minVal, 4.0)
}

func TestBeginDurationMeasurement_OneSamplePerTracker(t *testing.T) {
	reg, reader := newTestRegistry(t)

	const requests = 7
	for r := 0; r < requests; r++ {
		tracker := reg.BeginDurationMeasurement()
		tracker.Release(context.Background())
	}

	dp := histogramData(t, reader)
	assert.Equal(t, uint64(requests), dp.Count)
}

func TestDurationTracker_ReleasedOnPanicPath(t *testing.T) {
	reg, reader := newTestRegistry(t)

	func() {
		defer func() { _ = recover() }()

		tracker := reg.BeginDurationMeasurement()
		defer tracker.Release(context.Background())
		panic("request handler blew up")
	}()

	dp := histogramData(t, reader)
	assert.Equal(t, uint64(1), dp.Count, "sample recorded on panic exit path")
}
