// Package forecast generates synthetic weather forecasts and records
// the request metrics around each generation.
package forecast

import (
	"context"
	"math/rand"
	"time"

	"weatherapp/internal/domain/entity"
	"weatherapp/internal/observability/metrics"
)

const (
	// forecastDays is the fixed number of entries in every response.
	forecastDays = 5

	minTemperatureC = -20
	maxTemperatureC = 54

	// Simulated work bounds. The delay stands in for real upstream
	// latency and is deliberately not cancellable.
	minDelay = 5 * time.Millisecond
	maxDelay = 100 * time.Millisecond
)

// Service produces the synthetic forecast data for the API.
type Service struct {
	Metrics *metrics.Registry

	// Delay simulates upstream latency before generation. Nil selects
	// the default random sleep between 5 and 100 milliseconds; tests
	// inject a no-op.
	Delay func()
}

// Forecast generates forecasts for the next forecastDays days.
//
// Per request it begins a duration measurement, performs the simulated
// delay, increments the request counter, and releases the tracker on
// every exit path. Exactly one duration sample is recorded per call.
func (s Service) Forecast(ctx context.Context) []entity.Forecast {
	tracker := s.Metrics.BeginDurationMeasurement()
	defer tracker.Release(ctx)

	s.sleep()
	s.Metrics.IncrementRequestCount(ctx)

	return generate(time.Now())
}

func (s Service) sleep() {
	if s.Delay != nil {
		s.Delay()
		return
	}
	time.Sleep(minDelay + time.Duration(rand.Int63n(int64(maxDelay-minDelay+1))))
}

// generate returns forecastDays entries dated strictly after now,
// advancing one day per index, with temperatures uniform in
// [minTemperatureC, maxTemperatureC] and a random summary.
func generate(now time.Time) []entity.Forecast {
	out := make([]entity.Forecast, 0, forecastDays)
	for i := 1; i <= forecastDays; i++ {
		out = append(out, entity.Forecast{
			Date:         now.AddDate(0, 0, i),
			TemperatureC: minTemperatureC + rand.Intn(maxTemperatureC-minTemperatureC+1),
			Summary:      entity.Summaries[rand.Intn(len(entity.Summaries))],
		})
	}
	return out
}
