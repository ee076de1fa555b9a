package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.1.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	products int
}

// NewHealthHandler creates a new health handler. products is the size of the
// loaded catalog.
func NewHealthHandler(logger *slog.Logger, products int) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		products: products,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Products  int       `json:"products"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Products:  h.products,
	}, h.logger)
}
