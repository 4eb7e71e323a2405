package service

import (
	"context"
	"errors"
	"fmt"

	"robowarehouse/internal/client"
	"robowarehouse/internal/labels"
	"robowarehouse/internal/matching"
	"robowarehouse/internal/model"
)

var (
	// ErrInvalidStatus is returned for an unknown scan status filter
	ErrInvalidStatus = errors.New("invalid status filter")

	// ErrInvalidID is returned for a non-positive scan id
	ErrInvalidID = errors.New("invalid scan id")
)

// StatusAll disables status filtering
const StatusAll = "all"

// Backend defines the calls needed from the scan/inventory backend
type Backend interface {
	ListScans(ctx context.Context) ([]model.ScanRecord, error)
	ApproveScan(ctx context.Context, id int) (*model.ScanRecord, error)
	ClearCompletedScans(ctx context.Context) (int, error)
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)
	ListInventoryGrouped(ctx context.Context) ([]model.InventoryGroup, error)
}

// ScanFilter narrows a scan listing
type ScanFilter struct {
	Query  string
	Status string // "all", "in_progress" or "completed"
}

type WarehouseService struct {
	backend  Backend
	resolver *labels.Resolver
	baseURL  string
}

// NewWarehouseService creates the service. baseURL prefixes relative
// image paths returned by the backend.
func NewWarehouseService(backend Backend, resolver *labels.Resolver, baseURL string) *WarehouseService {
	return &WarehouseService{
		backend:  backend,
		resolver: resolver,
		baseURL:  baseURL,
	}
}

// ListScans returns the scans matching filter, images resolved
func (s *WarehouseService) ListScans(ctx context.Context, filter ScanFilter) ([]model.ScanView, error) {
	status, err := parseStatus(filter.Status)
	if err != nil {
		return nil, err
	}

	scans, err := s.backend.ListScans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}

	views := make([]model.ScanView, 0, len(scans))
	for _, scan := range scans {
		if status != "" && scan.Status != status {
			continue
		}
		if !matching.Contains(filter.Query, scan.Label, scan.RawText) {
			continue
		}
		views = append(views, s.scanView(scan))
	}

	return views, nil
}

// ApproveScan approves a scan and returns its updated view
func (s *WarehouseService) ApproveScan(ctx context.Context, id int) (*model.ScanView, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	scan, err := s.backend.ApproveScan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to approve scan %d: %w", id, err)
	}

	view := s.scanView(*scan)
	return &view, nil
}

// ClearCompleted removes completed scans and returns how many went away
func (s *WarehouseService) ClearCompleted(ctx context.Context) (int, error) {
	deleted, err := s.backend.ClearCompletedScans(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear completed scans: %w", err)
	}
	return deleted, nil
}

// ListInventory returns grouped inventory whose label matches query
func (s *WarehouseService) ListInventory(ctx context.Context, query string) ([]model.InventoryGroupView, error) {
	groups, err := s.backend.ListInventoryGrouped(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	views := make([]model.InventoryGroupView, 0, len(groups))
	for _, g := range groups {
		if !matching.Contains(query, g.Label) {
			continue
		}
		canonical, _ := s.resolver.Normalize(g.Label)
		image, _ := s.resolver.Resolve(g.Label, client.AbsImageURL(s.baseURL, g.LatestImageURL))
		views = append(views, model.InventoryGroupView{
			Label:           g.Label,
			Canonical:       canonical,
			Count:           g.Count,
			ImageURL:        image,
			LatestCreatedAt: g.LatestCreatedAt,
			AvgConfidence:   g.AvgConfidence,
		})
	}

	return views, nil
}

// ListInventoryItems returns individual inventory items matching query
// on label or raw text
func (s *WarehouseService) ListInventoryItems(ctx context.Context, query string) ([]model.InventoryItemView, error) {
	items, err := s.backend.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	views := make([]model.InventoryItemView, 0, len(items))
	for _, it := range items {
		if !matching.Contains(query, it.Label, it.RawText) {
			continue
		}
		canonical, _ := s.resolver.Normalize(it.Label)
		image, _ := s.resolver.Resolve(it.Label, client.AbsImageURL(s.baseURL, it.ImageURL))
		views = append(views, model.InventoryItemView{
			ID:         it.ID,
			Label:      it.Label,
			Canonical:  canonical,
			Confidence: it.Confidence,
			RawText:    it.RawText,
			ImageURL:   image,
			CreatedAt:  it.CreatedAt,
		})
	}

	return views, nil
}

// ResolveImage resolves a label against the catalog with an optional fallback
func (s *WarehouseService) ResolveImage(label, fallback *string) (string, bool) {
	return s.resolver.Resolve(label, fallback)
}

// NormalizeLabel returns the canonical form of label
func (s *WarehouseService) NormalizeLabel(label *string) (string, bool) {
	return s.resolver.Normalize(label)
}

func (s *WarehouseService) scanView(scan model.ScanRecord) model.ScanView {
	canonical, _ := s.resolver.Normalize(scan.Label)
	image, _ := s.resolver.Resolve(scan.Label, client.AbsImageURL(s.baseURL, &scan.ImageURL))
	return model.ScanView{
		ID:          scan.ID,
		Label:       scan.Label,
		Canonical:   canonical,
		Confidence:  scan.Confidence,
		RawText:     scan.RawText,
		ImageURL:    image,
		Status:      scan.Status,
		StatusLabel: scan.Status.Label(),
		CreatedAt:   scan.CreatedAt,
	}
}

func parseStatus(raw string) (model.ScanStatus, error) {
	if raw == "" || raw == StatusAll {
		return "", nil
	}
	status := model.ScanStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}
