package forecast

import (
	"weatherapp/internal/domain/entity"
)

// DTO is the wire representation of a single forecast entry.
type DTO struct {
	// Date is the forecast day in ISO-8601 date format.
	Date string `json:"date" example:"2026-08-26"`
	// TemperatureC is the temperature in degrees Celsius.
	TemperatureC int `json:"temperatureC" example:"25"`
	// TemperatureF is derived from TemperatureC.
	TemperatureF int `json:"temperatureF" example:"76"`
	// Summary is an optional descriptive label; null when absent.
	Summary *string `json:"summary" example:"Warm"`
}

// dateLayout is the ISO-8601 calendar date format used on the wire.
const dateLayout = "2006-01-02"

func toDTO(f entity.Forecast) DTO {
	dto := DTO{
		Date:         f.Date.Format(dateLayout),
		TemperatureC: f.TemperatureC,
		TemperatureF: f.TemperatureF(),
	}
	if f.Summary != "" {
		s := f.Summary
		dto.Summary = &s
	}
	return dto
}
