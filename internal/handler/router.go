package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health    *HealthHandler
	Status    *StatusHandler
	Scans     *ScanHandler
	Inventory *InventoryHandler
	Labels    *LabelHandler
}

// NewRouter builds the HTTP router
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors)

	r.Get("/health", h.Health.Check)
	r.Get("/status", h.Status.Status)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scans", h.Scans.List)
		r.Post("/scans/{id}/approve", h.Scans.Approve)
		r.Post("/scans/clear-completed", h.Scans.ClearCompleted)
		r.Get("/inventory", h.Inventory.Grouped)
		r.Get("/inventory/items", h.Inventory.Items)
		r.Get("/labels/resolve", h.Labels.Resolve)
		r.Get("/labels/normalize", h.Labels.Normalize)
	})

	return r
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
