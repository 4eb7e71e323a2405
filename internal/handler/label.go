package handler

import (
	"net/http"

	"robowarehouse/internal/model"
	"robowarehouse/internal/service"
)

type LabelHandler struct {
	svc *service.WarehouseService
}

func NewLabelHandler(svc *service.WarehouseService) *LabelHandler {
	return &LabelHandler{svc: svc}
}

// Resolve returns the display image for a label and optional fallback
func (h *LabelHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	label, fallback := optionalParam(r, "label"), optionalParam(r, "fallback")
	if label == nil && fallback == nil {
		writeError(w, http.StatusBadRequest, "missing_param", "Parameter 'label' or 'fallback' is required")
		return
	}

	canonical, _ := h.svc.NormalizeLabel(label)
	image, _ := h.svc.ResolveImage(label, fallback)

	resp := model.ResolveResponse{
		Canonical: canonical,
		ImageURL:  image,
	}
	if label != nil {
		resp.Label = *label
	}
	writeJSON(w, http.StatusOK, resp)
}

// Normalize returns the canonical form of a label
func (h *LabelHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	label := optionalParam(r, "label")
	if label == nil {
		writeError(w, http.StatusBadRequest, "missing_param", "Parameter 'label' is required")
		return
	}

	canonical, _ := h.svc.NormalizeLabel(label)
	writeJSON(w, http.StatusOK, model.ResolveResponse{
		Label:     *label,
		Canonical: canonical,
	})
}

// optionalParam distinguishes an absent query parameter from an empty one
func optionalParam(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
