package calendar

import (
	"context"
	"time"

	"clinicdesk/models"
)

// Event is the provider-agnostic payload for an event insert.
type Event struct {
	Title       string
	Description string
	StartUTC    time.Time
	EndUTC      time.Time
}

// EventResult is the provider's handle for a committed event.
type EventResult struct {
	EventID   string
	EventLink string
}

// Client is the external calendar boundary. Both calls are blocking network
// operations; callers route them through the bounded gate inside the
// implementation rather than holding their own pools.
type Client interface {
	// FreeBusy returns the busy intervals on calendarID between the UTC
	// instants, half-open.
	FreeBusy(ctx context.Context, calendarID string, startUTC, endUTC time.Time) ([]models.BusyInterval, error)
	// InsertEvent commits the event against calendarID.
	InsertEvent(ctx context.Context, calendarID string, event Event) (*EventResult, error)
}
