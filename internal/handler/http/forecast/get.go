// Package forecast exposes the weather forecast HTTP endpoint.
package forecast

import (
	"net/http"

	"weatherapp/internal/handler/http/respond"
	fcUC "weatherapp/internal/usecase/forecast"
)

// GetHandler serves the synthetic weather forecast.
type GetHandler struct{ Svc fcUC.Service }

// ServeHTTP returns the five-day weather forecast
// @Summary      Get weather forecast
// @Description  Returns a randomly generated five-day weather forecast. Each entry carries the date, the temperature in Celsius and Fahrenheit, and a descriptive summary.
// @Tags         weatherforecast
// @Produce      json
// @Success      200 {array} DTO "Five forecast entries, one per upcoming day"
// @Router       /weatherforecast [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list := h.Svc.Forecast(r.Context())

	out := make([]DTO, 0, len(list))
	for _, f := range list {
		out = append(out, toDTO(f))
	}
	respond.JSON(w, http.StatusOK, out)
}
