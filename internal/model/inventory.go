package model

// InventoryItem is a single approved scan copied into inventory
type InventoryItem struct {
	ID         int      `json:"id"`
	Label      *string  `json:"label"`
	Confidence *float64 `json:"confidence"`
	RawText    *string  `json:"raw_text"`
	ImageURL   *string  `json:"image_url"`
	CreatedAt  string   `json:"created_at"`
}

// InventoryGroup aggregates inventory items sharing a label
type InventoryGroup struct {
	Label           *string  `json:"label"`
	Count           int      `json:"count"`
	LatestImageURL  *string  `json:"latest_image_url"`
	LatestCreatedAt *string  `json:"latest_created_at"`
	AvgConfidence   *float64 `json:"avg_confidence"`
}

// InventoryItemView is an inventory item prepared for display
type InventoryItemView struct {
	ID         int      `json:"id"`
	Label      *string  `json:"label"`
	Canonical  string   `json:"canonical_label,omitempty"`
	Confidence *float64 `json:"confidence"`
	RawText    *string  `json:"raw_text"`
	ImageURL   string   `json:"image_url,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

// InventoryGroupView is an inventory group prepared for display
type InventoryGroupView struct {
	Label           *string  `json:"label"`
	Canonical       string   `json:"canonical_label,omitempty"`
	Count           int      `json:"count"`
	ImageURL        string   `json:"image_url,omitempty"`
	LatestCreatedAt *string  `json:"latest_created_at,omitempty"`
	AvgConfidence   *float64 `json:"avg_confidence,omitempty"`
}
