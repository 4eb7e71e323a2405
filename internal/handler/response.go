package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"robowarehouse/internal/client"
	"robowarehouse/internal/model"
	"robowarehouse/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// writeServiceError maps service and backend failures to HTTP answers
func writeServiceError(w http.ResponseWriter, err error, message string) {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.As(err, &apiErr) && apiErr.NotFound():
		writeError(w, http.StatusNotFound, "not_found", message)
	default:
		writeError(w, http.StatusBadGateway, "backend_error", message)
	}
}
