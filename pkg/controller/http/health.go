package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/caskbump/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
)

// healthHandler reports liveness and the running version
func healthHandler(startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:        "healthy",
			Service:       "caskbump",
			Version:       types.Version,
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}
