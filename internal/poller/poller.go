package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"robowarehouse/internal/model"
	"robowarehouse/internal/service"
)

// ScanLister is the part of the warehouse service the poller needs
type ScanLister interface {
	ListScans(ctx context.Context, filter service.ScanFilter) ([]model.ScanView, error)
}

// Poller periodically refreshes the scan list
type Poller struct {
	lister    ScanLister
	interval  time.Duration
	stats     *Stats
	logger    *slog.Logger
	onRefresh func([]model.ScanView)

	mu      sync.RWMutex
	latest  []model.ScanView
	fetched time.Time
}

// New creates a poller. onRefresh may be nil.
func New(lister ScanLister, interval time.Duration, logger *slog.Logger, onRefresh func([]model.ScanView)) *Poller {
	return &Poller{
		lister:    lister,
		interval:  interval,
		stats:     NewStats(),
		logger:    logger,
		onRefresh: onRefresh,
	}
}

// Run refreshes immediately and then on every tick until ctx is done.
// It always returns ctx.Err().
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("starting scan poller", "interval", p.interval.String())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
			p.logger.Warn("scan refresh failed", "error", err)
		}

		select {
		case <-ctx.Done():
			p.logger.Info("scan poller stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Refresh fetches the scan list once. On failure the previous list is kept.
func (p *Poller) Refresh(ctx context.Context) error {
	scans, err := p.lister.ListScans(ctx, service.ScanFilter{})
	if err != nil {
		p.stats.RecordFailure(err.Error())
		return err
	}

	p.mu.Lock()
	p.latest = scans
	p.fetched = time.Now()
	p.mu.Unlock()

	p.stats.RecordSuccess(scans)
	p.logger.Debug("scans refreshed", "count", len(scans))

	if p.onRefresh != nil {
		p.onRefresh(scans)
	}
	return nil
}

// Latest returns the last successfully fetched scans and when they were fetched
func (p *Poller) Latest() ([]model.ScanView, time.Time) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.fetched
}

// Snapshot returns the current polling stats
func (p *Poller) Snapshot() Snapshot {
	return p.stats.GetSnapshot()
}
