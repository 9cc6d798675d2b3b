package monitoring

import (
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	LogLevel string
}

// Service keeps simple per-event counters for the relay. Counters live
// in memory only and reset on restart, like everything else here.
type Service struct {
	config Config

	mu     sync.Mutex
	counts map[string]int64
	last   map[string]time.Time
}

// NewService creates a new monitoring service
func NewService(config Config) *Service {
	return &Service{
		config: config,
		counts: make(map[string]int64),
		last:   make(map[string]time.Time),
	}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	ts := time.Now()

	s.mu.Lock()
	s.counts[eventName]++
	s.last[eventName] = ts
	s.mu.Unlock()

	nuts.L.Infof("[Monitoring] Event %s recorded at %v with labels: %v", eventName, ts, labels)
}

// EventCount returns how often an event has been recorded since start.
func (s *Service) EventCount(eventName string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[eventName]
}

// LastEvent returns when an event was last recorded, if ever.
func (s *Service) LastEvent(eventName string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.last[eventName]
	return ts, ok
}
