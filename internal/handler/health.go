package handler

import (
	"context"
	"net/http"
	"time"

	"robowarehouse/internal/model"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// BackendChecker is satisfied by *client.BackendClient
type BackendChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	backend BackendChecker
	db      Pinger
}

// NewHealthHandler creates the health handler. db is nil when no
// database is configured.
func NewHealthHandler(backend BackendChecker, db Pinger) *HealthHandler {
	return &HealthHandler{backend: backend, db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := model.HealthResponse{
		Status:    "ok",
		Backend:   "connected",
		Database:  "disabled",
		Timestamp: time.Now(),
	}

	if err := h.backend.Health(ctx); err != nil {
		response.Backend = "disconnected"
		response.Status = "degraded"
	}

	if h.db != nil {
		response.Database = "connected"
		if err := h.db.Ping(ctx); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, response)
}
