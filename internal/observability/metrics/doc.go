// Package metrics provides OpenTelemetry metrics for the weather API.
//
// All request instruments are registered under the "WeatherApp.Api"
// instrumentation scope so exporters and dashboards can filter and
// aggregate them together:
//   - weatherapp.api.weather_requests.count (monotonic counter)
//   - weatherapp.api.weather_requests.duration (histogram, milliseconds)
//
// The meter provider exports through the Prometheus bridge, so every
// instrument recorded here shows up on the /metrics endpoint alongside
// the native Prometheus HTTP metrics.
//
// Example usage:
//
//	reg, err := metrics.NewRegistry(provider)
//	if err != nil {
//	    // instrument creation failure is fatal at startup
//	}
//
//	func handle(ctx context.Context) {
//	    tracker := reg.BeginDurationMeasurement()
//	    defer tracker.Release(ctx)
//
//	    reg.IncrementRequestCount(ctx)
//	    // ... handle request ...
//	}
package metrics
