package booking

import (
	"context"

	"clinicdesk/models"
	"clinicdesk/services/scheduling"
)

// BookingService wraps the scheduling engine with the collaborator concerns
// the engine itself stays out of: persisting committed appointments and
// scheduling reminders. It exposes exactly the two tool-protocol operations.
type BookingService interface {
	// AvailableSlotDisplays returns free slots as "YYYY-MM-DD hh:mm AM"
	// strings, chronologically ordered, possibly empty.
	AvailableSlotDisplays(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]string, error)

	// BookAppointment commits a slot, records the appointment and schedules
	// a reminder. Record/reminder failures are non-fatal once the calendar
	// commit has succeeded.
	BookAppointment(ctx context.Context, clinic *models.Clinic, patient *models.Patient, req scheduling.BookingRequest) (*models.BookingConfirmation, error)
}
