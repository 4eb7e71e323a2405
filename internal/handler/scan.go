package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"robowarehouse/internal/model"
	"robowarehouse/internal/service"
)

type ScanHandler struct {
	svc *service.WarehouseService
}

func NewScanHandler(svc *service.WarehouseService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

// List returns scans filtered by text (q) and status
func (h *ScanHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.ScanFilter{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}

	scans, err := h.svc.ListScans(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list scans", "error", err)
		writeServiceError(w, err, "Failed to load scans")
		return
	}

	writeJSON(w, http.StatusOK, model.ScansResponse{
		Scans: scans,
		Total: len(scans),
	})
}

// Approve marks a scan completed and copies it into inventory
func (h *ScanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "Scan id must be a number")
		return
	}

	scan, err := h.svc.ApproveScan(r.Context(), id)
	if err != nil {
		slog.Error("failed to approve scan", "id", id, "error", err)
		writeServiceError(w, err, "Approve failed")
		return
	}

	slog.Info("scan approved", "id", id)
	writeJSON(w, http.StatusOK, scan)
}

// ClearCompleted removes completed scans from the scan log
func (h *ScanHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.ClearCompleted(r.Context())
	if err != nil {
		slog.Error("failed to clear completed scans", "error", err)
		writeServiceError(w, err, "Clear completed failed")
		return
	}

	slog.Info("completed scans cleared", "deleted", deleted)
	writeJSON(w, http.StatusOK, model.ClearCompletedResult{Deleted: deleted})
}
