package handlers

import (
	"context"
	"log"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheck reports 200 when the store answers a ping and 503 otherwise.
func HealthCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Printf("Health check: database ping failed: %v", err)
			WriteAPIError(w, http.StatusServiceUnavailable, CodeUnavailable, "Database is unreachable")
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}
