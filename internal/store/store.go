// FilePath: internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/avamo13/lastseen/internal/models"
)

// ErrNotFound indicates that a slot has never been written.
var ErrNotFound = errors.New("no value stored yet")

// Store holds the single most recent report of each kind. Put replaces
// the slot wholesale and always succeeds; validation is the caller's
// job. Get fails with ErrNotFound until the first Put for that kind.
type Store interface {
	PutLocation(ctx context.Context, report *models.LocationReport) error
	Location(ctx context.Context) (*models.LocationReport, error)
	PutConnection(ctx context.Context, report *models.ConnectionReport) error
	Connection(ctx context.Context) (*models.ConnectionReport, error)
}
