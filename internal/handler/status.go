package handler

import (
	"net/http"
	"time"

	"robowarehouse/internal/poller"
)

// StatusSource is satisfied by *poller.Poller
type StatusSource interface {
	Snapshot() poller.Snapshot
}

type StatusHandler struct {
	source StatusSource
}

func NewStatusHandler(source StatusSource) *StatusHandler {
	return &StatusHandler{source: source}
}

// Status returns current poller statistics as JSON
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	snapshot := h.source.Snapshot()

	lastRefresh := ""
	if !snapshot.LastRefreshAt.IsZero() {
		lastRefresh = snapshot.LastRefreshAt.Format(time.RFC3339)
	}

	response := map[string]interface{}{
		"status":     snapshot.Status,
		"started_at": snapshot.StartedAt.Format(time.RFC3339),
		"elapsed":    snapshot.Elapsed.String(),
		"polling": map[string]interface{}{
			"refreshes":       snapshot.Refreshes,
			"failures":        snapshot.Failures,
			"last_refresh_at": lastRefresh,
		},
		"scans": map[string]interface{}{
			"total":       snapshot.Total,
			"in_progress": snapshot.InProgress,
			"completed":   snapshot.Completed,
		},
		"last_error": snapshot.LastError,
	}

	writeJSON(w, http.StatusOK, response)
}
