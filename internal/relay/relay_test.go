package relay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avamo13/lastseen/internal/errors"
	"github.com/avamo13/lastseen/internal/models"
	"github.com/avamo13/lastseen/internal/store/memory"
)

func TestIngestLocation(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	report, err := svc.IngestLocation(ctx, models.LocationUpdate{
		Coor: "40.7, -74.0",
		Time: "13.51",
		Date: "13-8-2025",
	})
	assert.NoError(t, err)
	assert.Equal(t, 40.7, report.Latitude)
	assert.Equal(t, -74.0, report.Longitude)
	assert.Nil(t, report.Accuracy)
	assert.Equal(t, "13.51", report.Time)
	assert.Equal(t, "13-8-2025", report.Date)

	stored, err := svc.LastLocation(ctx)
	assert.NoError(t, err)
	assert.Equal(t, report, stored)
}

func TestIngestLocationWithAccuracy(t *testing.T) {
	svc := New(memory.New())

	acc := 8.5
	report, err := svc.IngestLocation(context.Background(), models.LocationUpdate{
		Coor: "51.5,-0.12",
		Acc:  &acc,
		Time: "9.15",
		Date: "1-9-2025",
	})
	assert.NoError(t, err)
	assert.NotNil(t, report.Accuracy)
	assert.Equal(t, 8.5, *report.Accuracy)
}

func TestIngestLocationInvalidCoordinates(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	for _, coor := range []string{"", "40.7", "40.7,-74.0,12", "abc,-74.0"} {
		_, err := svc.IngestLocation(ctx, models.LocationUpdate{Coor: coor, Time: "13.51", Date: "13-8-2025"})
		assert.True(t, errors.IsValidation(err), "coor %q should fail validation", coor)
	}

	// A rejected update must not touch the store.
	_, err := svc.LastLocation(ctx)
	assert.True(t, errors.IsNotFound(err))
}

func TestIngestConnection(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	report, err := svc.IngestConnection(ctx, models.ConnectionUpdate{Time: "14.02", Date: "13-8-2025"})
	assert.NoError(t, err)
	assert.Equal(t, "14.02", report.Time)

	stored, err := svc.LastConnection(ctx)
	assert.NoError(t, err)
	assert.Equal(t, report, stored)
}

func TestLastLocationBeforeAnyUpdate(t *testing.T) {
	svc := New(memory.New())

	_, err := svc.LastLocation(context.Background())
	assert.True(t, errors.IsNotFound(err))
}

func TestOverwriteDiscardsPrevious(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	_, err := svc.IngestLocation(ctx, models.LocationUpdate{Coor: "1,2", Time: "10.00", Date: "1-1-2025"})
	assert.NoError(t, err)
	_, err = svc.IngestLocation(ctx, models.LocationUpdate{Coor: "3,4", Time: "11.00", Date: "1-1-2025"})
	assert.NoError(t, err)

	stored, err := svc.LastLocation(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, stored.Latitude)
	assert.Equal(t, 4.0, stored.Longitude)
}

func TestOnUpdateEvents(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	locations := make(chan string, 1)
	svc.OnUpdate(EventLocationUpdated, func(label string) {
		locations <- label
	})
	connections := make(chan string, 1)
	svc.OnUpdate(EventConnectionUpdated, func(label string) {
		connections <- label
	})

	_, err := svc.IngestLocation(ctx, models.LocationUpdate{Coor: "1,2", Time: "10.00", Date: "1-1-2025"})
	assert.NoError(t, err)
	_, err = svc.IngestConnection(ctx, models.ConnectionUpdate{Time: "10.05", Date: "1-1-2025"})
	assert.NoError(t, err)

	select {
	case label := <-locations:
		assert.Equal(t, "10.00", label)
	case <-time.After(time.Second):
		t.Fatal("no location update event received")
	}

	select {
	case label := <-connections:
		assert.Equal(t, "10.05", label)
	case <-time.After(time.Second):
		t.Fatal("no connection update event received")
	}
}
