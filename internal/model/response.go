package model

import "time"

// ScansResponse wraps a filtered scan list
type ScansResponse struct {
	Scans []ScanView `json:"scans"`
	Total int        `json:"total"`
}

// InventoryResponse wraps grouped inventory
type InventoryResponse struct {
	Groups []InventoryGroupView `json:"groups"`
	Total  int                  `json:"total"`
}

// InventoryItemsResponse wraps flat inventory
type InventoryItemsResponse struct {
	Items []InventoryItemView `json:"items"`
	Total int                 `json:"total"`
}

// ResolveResponse represents a label resolution
type ResolveResponse struct {
	Label     string `json:"label"`
	Canonical string `json:"canonical_label,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Backend   string    `json:"backend"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
