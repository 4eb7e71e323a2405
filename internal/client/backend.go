package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"robowarehouse/internal/model"
)

// APIError is returned when the backend answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, body)
}

// NotFound reports whether the backend rejected an unknown resource
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// RetryConfig defines retry behavior for idempotent requests
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// BackendConfig configures a BackendClient
type BackendConfig struct {
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
	Retry             RetryConfig
}

// DefaultRetryConfig returns the retry policy used for reads
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		Multiplier:     2.0,
	}
}

// BackendClient handles communication with the scan/inventory backend
type BackendClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
	retryConfig RetryConfig
}

// NewBackendClient creates a new backend client
func NewBackendClient(cfg BackendConfig) *BackendClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	return &BackendClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
		retryConfig: cfg.Retry,
	}
}

// BaseURL returns the backend address used to absolutise image paths
func (c *BackendClient) BaseURL() string {
	return c.baseURL
}

// Health checks the backend root endpoint
func (c *BackendClient) Health(ctx context.Context) error {
	_, err := c.fetchWithRetry(ctx, http.MethodGet, "/")
	return err
}

// ListScans fetches all scans, newest first
func (c *BackendClient) ListScans(ctx context.Context) ([]model.ScanRecord, error) {
	var scans []model.ScanRecord
	if err := c.getJSON(ctx, "/scans", &scans); err != nil {
		return nil, err
	}
	return scans, nil
}

// ApproveScan marks a scan completed and copies it into inventory
func (c *BackendClient) ApproveScan(ctx context.Context, id int) (*model.ScanRecord, error) {
	body, err := c.fetch(ctx, http.MethodPost, fmt.Sprintf("/scans/%d/approve", id))
	if err != nil {
		return nil, err
	}

	var scan model.ScanRecord
	if err := json.Unmarshal(body, &scan); err != nil {
		return nil, fmt.Errorf("failed to parse approve response: %w", err)
	}
	return &scan, nil
}

// ClearCompletedScans removes completed scans from the scan log.
// Inventory rows and images are kept by the backend.
func (c *BackendClient) ClearCompletedScans(ctx context.Context) (int, error) {
	body, err := c.fetch(ctx, http.MethodPost, "/scans/clear_completed")
	if err != nil {
		return 0, err
	}

	var result model.ClearCompletedResult
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to parse clear response: %w", err)
	}
	return result.Deleted, nil
}

// ListInventory fetches every inventory item, newest first
func (c *BackendClient) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := c.getJSON(ctx, "/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListInventoryGrouped fetches inventory aggregated per label
func (c *BackendClient) ListInventoryGrouped(ctx context.Context) ([]model.InventoryGroup, error) {
	var groups []model.InventoryGroup
	if err := c.getJSON(ctx, "/inventory/grouped", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Close closes the client
func (c *BackendClient) Close() {
	c.rateLimiter.Stop()
}

func (c *BackendClient) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.fetchWithRetry(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

// fetchWithRetry performs an idempotent request, retrying transport
// failures, 429 and 5xx answers with exponential backoff
func (c *BackendClient) fetchWithRetry(ctx context.Context, method, path string) ([]byte, error) {
	backoff := c.retryConfig.InitialBackoff

	for attempt := 0; ; attempt++ {
		body, err := c.fetch(ctx, method, path)
		if err == nil {
			return body, nil
		}
		if attempt >= c.retryConfig.MaxRetries || !retryable(err) || ctx.Err() != nil {
			return nil, err
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff = min(time.Duration(float64(backoff)*c.retryConfig.Multiplier), c.retryConfig.MaxBackoff)
	}
}

func (c *BackendClient) fetch(ctx context.Context, method, path string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	return !errors.Is(err, ErrLimiterStopped)
}

// AbsImageURL turns a backend-relative image path into an absolute URL.
// Values that already start with "http" are returned unchanged.
func AbsImageURL(base string, rel *string) *string {
	if rel == nil || *rel == "" {
		return nil
	}
	if strings.HasPrefix(*rel, "http") {
		return rel
	}
	abs := strings.TrimRight(base, "/") + *rel
	return &abs
}
