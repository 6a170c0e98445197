package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"
)

// Health status values reported per check and for the aggregate.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// TagLive marks checks queried by the liveness endpoint. Checks without
// the tag still count toward the full /health aggregate.
const TagLive = "live"

// checkTimeout bounds the total time spent evaluating checks per request.
const checkTimeout = 5 * time.Second

// CheckStatus represents the result of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// CheckFunc evaluates one health check.
type CheckFunc func(ctx context.Context) CheckStatus

// Check is a named, tagged health check registered with a handler.
type Check struct {
	Name string
	Tags []string
	Run  CheckFunc
}

// HasTag reports whether the check carries the given tag.
func (c Check) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// SelfCheck returns the default liveness check: the process is up and
// able to evaluate checks, so it always reports healthy.
func SelfCheck() Check {
	return Check{
		Name: "self",
		Tags: []string{TagLive},
		Run: func(_ context.Context) CheckStatus {
			return CheckStatus{Status: StatusHealthy}
		},
	}
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// HealthHandler evaluates registered health checks and reports the
// aggregate. With Tag set, only checks carrying that tag are evaluated;
// otherwise all checks are.
// Returns 200 OK if every evaluated check is healthy, 503 otherwise.
type HealthHandler struct {
	Checks  []Check
	Version string
	Tag     string
}

// NewHealthHandler returns the handler for the full health aggregate.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{Checks: checks, Version: version}
}

// NewAliveHandler returns the handler for the liveness probe, restricted
// to checks tagged "live".
func NewAliveHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{Checks: checks, Version: version, Tag: TagLive}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	results := make(map[string]CheckStatus)
	allHealthy := true

	for _, check := range h.Checks {
		if h.Tag != "" && !check.HasTag(h.Tag) {
			continue
		}
		status := check.Run(ctx)
		results[check.Name] = status
		if status.Status != StatusHealthy {
			allHealthy = false
		}
	}

	status := StatusHealthy
	statusCode := http.StatusOK
	if !allHealthy {
		status = StatusUnhealthy
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    results,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Default().Error("health: failed to encode response", slog.Any("error", err))
	}
}
