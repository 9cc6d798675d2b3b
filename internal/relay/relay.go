// FilePath: internal/relay/relay.go
package relay

import (
	"context"

	nuts "github.com/vaudience/go-nuts"

	"github.com/avamo13/lastseen/internal/errors"
	"github.com/avamo13/lastseen/internal/geo"
	"github.com/avamo13/lastseen/internal/models"
	"github.com/avamo13/lastseen/internal/store"
)

// Event names emitted after a successful ingestion.
const (
	EventLocationUpdated   = "location.updated"
	EventConnectionUpdated = "connection.updated"
)

// RelayService validates inbound reports and keeps the latest one of
// each kind in the store. It is the single write path; handlers never
// touch the store directly.
type RelayService struct {
	store  store.Store
	events *nuts.EventEmitter
}

// New creates a new RelayService instance
func New(s store.Store) *RelayService {
	return &RelayService{
		store:  s,
		events: nuts.NewEventEmitter(),
	}
}

// IngestLocation parses and stores a location update. A coordinate
// string that does not parse leaves the store untouched and returns a
// validation error for the caller to surface as a 400.
func (s *RelayService) IngestLocation(ctx context.Context, update models.LocationUpdate) (*models.LocationReport, error) {
	lat, lon, err := geo.ParseCoordinates(update.Coor)
	if err != nil {
		return nil, errors.NewValidationError("invalid coor format, use 'lat,lon'", err)
	}

	report := &models.LocationReport{
		Latitude:  lat,
		Longitude: lon,
		Accuracy:  update.Acc,
		Time:      update.Time,
		Date:      update.Date,
	}

	if err := s.store.PutLocation(ctx, report); err != nil {
		return nil, errors.NewInternalError("failed to store location report", err)
	}

	if err := s.events.Emit(EventLocationUpdated, report.Time); err != nil {
		nuts.L.Warnf("[Relay] failed to emit %s: %v", EventLocationUpdated, err)
	}
	return report, nil
}

// IngestConnection stores a connectivity heartbeat. The time and date
// strings are opaque labels, so there is nothing to validate.
func (s *RelayService) IngestConnection(ctx context.Context, update models.ConnectionUpdate) (*models.ConnectionReport, error) {
	report := &models.ConnectionReport{
		Time: update.Time,
		Date: update.Date,
	}

	if err := s.store.PutConnection(ctx, report); err != nil {
		return nil, errors.NewInternalError("failed to store connection report", err)
	}

	if err := s.events.Emit(EventConnectionUpdated, report.Time); err != nil {
		nuts.L.Warnf("[Relay] failed to emit %s: %v", EventConnectionUpdated, err)
	}
	return report, nil
}

// LastLocation returns the most recently stored location report.
func (s *RelayService) LastLocation(ctx context.Context) (*models.LocationReport, error) {
	report, err := s.store.Location(ctx)
	if err != nil {
		return nil, errors.NewNotFoundError("no location stored yet", err)
	}
	return report, nil
}

// LastConnection returns the most recently stored connection report.
func (s *RelayService) LastConnection(ctx context.Context) (*models.ConnectionReport, error) {
	report, err := s.store.Connection(ctx)
	if err != nil {
		return nil, errors.NewNotFoundError("no connection stored yet", err)
	}
	return report, nil
}

// OnUpdate registers a callback for ingestion events. The handler is
// registered as-is: the emitter dispatches by reflection and expects
// the listener signature to match the emitted arguments exactly, so a
// variadic wrapper would never be called for a single string argument.
func (s *RelayService) OnUpdate(event string, handler func(label string)) {
	s.events.On(event, "update_handler", handler)
}
