package scheduling

import (
	"context"
	"time"

	"clinicdesk/models"
	"clinicdesk/services/calendar"
)

// BookingRequest carries one booking attempt. Slot accepts the display
// format offered by the read path ("2006-01-02 03:04 PM"), its 24-hour
// variant, or an RFC3339 instant.
type BookingRequest struct {
	ServiceText  string
	PatientName  string
	PatientPhone string
	Slot         string
}

// Engine is the availability/booking core. The read path (AvailableSlots)
// and write path (BookAppointment) share service resolution and timezone
// conventions but are independently invocable. All operations are
// request-scoped and stateless; the only shared resource is the calendar
// client handle.
type Engine interface {
	// AvailableSlots returns the free candidate windows for a service on a
	// date, chronologically ordered. A calendar failure surfaces as
	// ErrCalendarUnavailable, never as an empty (falsely fully-available or
	// falsely fully-booked) result.
	AvailableSlots(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]models.CandidateSlot, error)

	// BookAppointment re-resolves the practitioner and commits the slot
	// against the external calendar. There is no conflict re-check between
	// slot listing and commit; two concurrent attempts for the same window
	// can both succeed at the provider.
	BookAppointment(ctx context.Context, clinic *models.Clinic, req BookingRequest) (*models.BookingConfirmation, error)
}

// DefaultEngine implements Engine on top of a calendar client.
type DefaultEngine struct {
	Calendar calendar.Client
	// Now allows tests to pin the clock; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
