package poller

import (
	"sync"
	"time"

	"robowarehouse/internal/model"
)

// Stats tracks polling progress
type Stats struct {
	mu sync.RWMutex

	StartedAt     time.Time
	Refreshes     int
	Failures      int
	LastError     string
	LastRefreshAt time.Time

	// Latest scan counts
	Total      int
	InProgress int
	Completed  int
}

// NewStats creates a new stats tracker
func NewStats() *Stats {
	return &Stats{StartedAt: time.Now()}
}

// RecordSuccess stores the counts of a successful refresh
func (s *Stats) RecordSuccess(scans []model.ScanView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Refreshes++
	s.LastRefreshAt = time.Now()
	s.LastError = ""
	s.Total = len(scans)
	s.InProgress = 0
	s.Completed = 0
	for _, scan := range scans {
		switch scan.Status {
		case model.ScanStatusInProgress:
			s.InProgress++
		case model.ScanStatusCompleted:
			s.Completed++
		}
	}
}

// RecordFailure increments failed counter and sets error
func (s *Stats) RecordFailure(err string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failures++
	s.LastError = err
}

// GetSnapshot returns a snapshot of current stats
func (s *Stats) GetSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := "starting"
	switch {
	case s.LastError != "":
		status = "failing"
	case s.Refreshes > 0:
		status = "running"
	}

	return Snapshot{
		Status:        status,
		StartedAt:     s.StartedAt,
		Elapsed:       time.Since(s.StartedAt),
		Refreshes:     s.Refreshes,
		Failures:      s.Failures,
		LastError:     s.LastError,
		LastRefreshAt: s.LastRefreshAt,
		Total:         s.Total,
		InProgress:    s.InProgress,
		Completed:     s.Completed,
	}
}

// Snapshot is a point-in-time snapshot of polling stats
type Snapshot struct {
	Status        string
	StartedAt     time.Time
	Elapsed       time.Duration
	Refreshes     int
	Failures      int
	LastError     string
	LastRefreshAt time.Time
	Total         int
	InProgress    int
	Completed     int
}
