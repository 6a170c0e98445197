package forecast

import (
	"net/http"

	fcUC "weatherapp/internal/usecase/forecast"
)

// Register registers the forecast HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc fcUC.Service) {
	mux.Handle("GET /weatherforecast", GetHandler{svc})
}
