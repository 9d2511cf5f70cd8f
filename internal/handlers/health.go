package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health check payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: OK
	Status string `json:"status"`

	// Server time
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "OK"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "OK",
			Timestamp: time.Now(),
		})
	}
}
