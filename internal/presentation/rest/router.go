package rest

import "net/http"

// NewRouter serves the probes and, when metrics is non-nil, GET /metrics.
func NewRouter(health *HealthHandler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	health.RegisterRoutes(mux)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	return mux
}
