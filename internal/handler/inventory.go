package handler

import (
	"log/slog"
	"net/http"

	"robowarehouse/internal/model"
	"robowarehouse/internal/service"
)

type InventoryHandler struct {
	svc *service.WarehouseService
}

func NewInventoryHandler(svc *service.WarehouseService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Grouped returns one row per label
func (h *InventoryHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListInventory(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("failed to list inventory", "error", err)
		writeServiceError(w, err, "Failed to load inventory")
		return
	}

	writeJSON(w, http.StatusOK, model.InventoryResponse{
		Groups: groups,
		Total:  len(groups),
	})
}

// Items returns every inventory item
func (h *InventoryHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListInventoryItems(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("failed to list inventory items", "error", err)
		writeServiceError(w, err, "Failed to load inventory items")
		return
	}

	writeJSON(w, http.StatusOK, model.InventoryItemsResponse{
		Items: items,
		Total: len(items),
	})
}
