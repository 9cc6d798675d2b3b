// FilePath: internal/store/memory/memory.go
package memory

import (
	"context"
	"sync"

	"github.com/avamo13/lastseen/internal/models"
	"github.com/avamo13/lastseen/internal/store"
)

// Store keeps the latest location and connection reports in memory.
// Both slots start unset and are lost when the process exits. A single
// RWMutex covers both slots; contention is negligible and hold times
// are effectively zero.
type Store struct {
	mu         sync.RWMutex
	location   *models.LocationReport
	connection *models.ConnectionReport
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// PutLocation replaces the location slot. The previous value is
// discarded without retention.
func (s *Store) PutLocation(_ context.Context, report *models.LocationReport) error {
	r := cloneLocation(report)
	s.mu.Lock()
	s.location = r
	s.mu.Unlock()
	return nil
}

// Location returns a copy of the latest location report, or
// store.ErrNotFound if none has been stored since process start.
func (s *Store) Location(_ context.Context) (*models.LocationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.location == nil {
		return nil, store.ErrNotFound
	}
	return cloneLocation(s.location), nil
}

// cloneLocation copies a report including the optional accuracy
// pointer, so no caller ever aliases the slot's memory.
func cloneLocation(report *models.LocationReport) *models.LocationReport {
	r := *report
	if report.Accuracy != nil {
		acc := *report.Accuracy
		r.Accuracy = &acc
	}
	return &r
}

// PutConnection replaces the connection slot.
func (s *Store) PutConnection(_ context.Context, report *models.ConnectionReport) error {
	r := *report
	s.mu.Lock()
	s.connection = &r
	s.mu.Unlock()
	return nil
}

// Connection returns a copy of the latest connection report, or
// store.ErrNotFound if none has been stored since process start.
func (s *Store) Connection(_ context.Context) (*models.ConnectionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.connection == nil {
		return nil, store.ErrNotFound
	}
	r := *s.connection
	return &r, nil
}
