package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// ScopeName is the instrumentation scope under which all weather API
// instruments are registered. Exporters use it to group the request
// counter and duration histogram together.
const ScopeName = "WeatherApp.Api"

// Instrument names are part of the external contract: dashboards and
// alerts are built against them, so they must not change.
const (
	requestCountName    = "weatherapp.api.weather_requests.count"
	requestDurationName = "weatherapp.api.weather_requests.duration"
)

// Registry owns the weather request instruments. It is created once at
// startup and shared by reference across all request handlers; creating
// instruments per request would register duplicate metric series.
//
// The underlying OpenTelemetry instruments are safe for concurrent use,
// so Registry needs no synchronization of its own.
type Registry struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// NewRegistry creates the request counter and duration histogram from
// the given meter provider. Instrument creation happens exactly once
// here; a failure is fatal to startup, not handled per call.
func NewRegistry(provider metric.MeterProvider) (*Registry, error) {
	meter := provider.Meter(ScopeName)

	requestCount, err := meter.Int64Counter(
		requestCountName,
		metric.WithDescription("Total number of weather forecast requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("create counter %s: %w", requestCountName, err)
	}

	requestDuration, err := meter.Float64Histogram(
		requestDurationName,
		metric.WithDescription("Weather forecast request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create histogram %s: %w", requestDurationName, err)
	}

	return &Registry{
		requestCount:    requestCount,
		requestDuration: requestDuration,
	}, nil
}

// IncrementRequestCount adds 1 to the monotonic request counter.
func (r *Registry) IncrementRequestCount(ctx context.Context) {
	r.requestCount.Add(ctx, 1)
}

// BeginDurationMeasurement returns a new tracker bound to the duration
// histogram and stamped with the current timestamp. Release it with
// defer so exactly one sample is recorded on every exit path.
func (r *Registry) BeginDurationMeasurement() *DurationTracker {
	return newDurationTracker(r.requestDuration)
}
