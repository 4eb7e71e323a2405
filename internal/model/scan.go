package model

// ScanStatus is the review state of a scan
type ScanStatus string

const (
	ScanStatusInProgress ScanStatus = "in_progress"
	ScanStatusCompleted  ScanStatus = "completed"
)

// Valid reports whether s is a known status
func (s ScanStatus) Valid() bool {
	return s == ScanStatusInProgress || s == ScanStatusCompleted
}

// Label returns the human readable status
func (s ScanStatus) Label() string {
	switch s {
	case ScanStatusInProgress:
		return "In progress"
	case ScanStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ScanRecord is a scan as returned by the backend
type ScanRecord struct {
	ID         int        `json:"id"`
	Label      *string    `json:"label"`
	Confidence *float64   `json:"confidence"` // 0..100
	RawText    *string    `json:"raw_text"`
	ImageURL   string     `json:"image_url"`
	Status     ScanStatus `json:"status"`
	CreatedAt  string     `json:"created_at"`
}

// ScanView is a scan prepared for display
type ScanView struct {
	ID          int        `json:"id"`
	Label       *string    `json:"label"`
	Canonical   string     `json:"canonical_label,omitempty"`
	Confidence  *float64   `json:"confidence"`
	RawText     *string    `json:"raw_text"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      ScanStatus `json:"status"`
	StatusLabel string     `json:"status_label"`
	CreatedAt   string     `json:"created_at"`
}

// ClearCompletedResult is the backend reply to a bulk clear
type ClearCompletedResult struct {
	Deleted int `json:"deleted"`
}
