package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthCheckHandler returns an HTTP handler for liveness and readiness
// probes. Without dependency checks it answers 200 "ALIVE"; with checks it
// runs each and answers 503 when any fails.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				if log != nil {
					log.ErrorContext(ctx, "healthcheck failed", slog.Any("error", err))
				}
				http.Error(w, "UNHEALTHY", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}
