package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const readinessTimeout = 2 * time.Second

// ReadinessCheck is one dependency the service needs before taking traffic.
type ReadinessCheck struct {
	Check func(ctx context.Context) error
	Name  string
}

// HealthHandler serves liveness and readiness probes over HTTP.
type HealthHandler struct {
	logger  *slog.Logger
	service string
	checks  []ReadinessCheck
}

// NewHealthHandler creates a health check HTTP handler. Readiness fails when
// any check returns an error.
func NewHealthHandler(logger *slog.Logger, service string, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{logger: logger, service: service, checks: checks}
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.service,
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	failed := map[string]string{}
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "check", c.Name, "error", err)
			failed[c.Name] = err.Error()
		}
	}

	if len(failed) > 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":  "unavailable",
			"service": h.service,
			"checks":  failed,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": h.service,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
