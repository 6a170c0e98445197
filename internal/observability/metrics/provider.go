package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// NewProvider creates a meter provider that exports through the
// Prometheus bridge. The exporter registers with the default Prometheus
// registerer, so OpenTelemetry instruments appear on the same /metrics
// page as the promauto HTTP metrics.
//
// The provider is also installed as the global OpenTelemetry meter
// provider. Callers must Shutdown the returned provider on exit to
// flush pending aggregations.
func NewProvider() (*sdkmetric.MeterProvider, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("initialize prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	return provider, nil
}
