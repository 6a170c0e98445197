package entity

import "time"

// Summaries is the fixed set of descriptive labels a forecast may carry,
// ordered from coldest to hottest.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Forecast is a synthetic weather forecast for a single day. It is
// generated per request, serialized, and discarded; nothing persists it.
type Forecast struct {
	Date         time.Time
	TemperatureC int
	Summary      string
}

// TemperatureF derives the Fahrenheit temperature from Celsius using
// the fixed conversion 32 + C/0.5556 with truncation toward zero.
func (f Forecast) TemperatureF() int {
	return 32 + int(float64(f.TemperatureC)/0.5556)
}
