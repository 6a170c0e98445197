// Package observability groups the logging, metrics, and tracing
// support for the weather API.
//
// Subpackages:
//   - logging: structured slog loggers and context propagation
//   - metrics: OpenTelemetry request instruments under the
//     WeatherApp.Api scope, exported via Prometheus
//   - tracing: tracer provider, sampler configuration, and HTTP
//     tracing middleware
package observability
