package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	products int
	started  time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, products int) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		products: products,
		started:  time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
	Products      int       `json:"products"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Version:       "1.0.0",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Products:      h.products,
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
