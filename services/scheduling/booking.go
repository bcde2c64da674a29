package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinicdesk/models"
	"clinicdesk/services/calendar"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// slotLayouts are the accepted formats for a booking slot, tried in order.
// The first two are the display formats offered by the read path.
var slotLayouts = []string{
	"2006-01-02 03:04 PM",
	"2006-01-02 3:04 PM",
	"2006-01-02 15:04",
}

// ParseSlotTime parses a requested slot into a clinic-local instant. Naive
// formats are interpreted in the clinic timezone; RFC3339 instants keep
// their own offset and are converted.
func ParseSlotTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range slotLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse slot %q: %w", raw, ErrInvalidSlotFormat)
}

// BookAppointment is the write path. The practitioner is re-resolved rather
// than trusted from an earlier read — the directory may have changed. The
// slot is NOT re-checked against busy intervals immediately before the
// insert: conflict detection happens only during listing, so two concurrent
// commits for the same window can both succeed at the provider.
func (e *DefaultEngine) BookAppointment(ctx context.Context, clinic *models.Clinic, req BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	match, err := ResolveService(req.ServiceText, clinic.Practitioners)
	if err != nil {
		return nil, err
	}
	if match.Practitioner.CalendarID == "" {
		return nil, fmt.Errorf("practitioner %s has no calendar id: %w",
			match.Practitioner.Name, ErrBookingFailed)
	}

	loc := ClinicLocation(clinic.Timezone)
	startLocal, err := ParseSlotTime(req.Slot, loc)
	if err != nil {
		return nil, err
	}
	startUTC := startLocal.UTC()
	endUTC := startUTC.Add(time.Duration(match.DurationMinutes) * time.Minute)

	if e.Calendar == nil {
		return nil, fmt.Errorf("calendar client not initialized: %w", ErrBookingFailed)
	}

	event := calendar.Event{
		Title:       fmt.Sprintf("%s - %s", match.ServiceName, req.PatientName),
		Description: eventDescription(clinic, match, req),
		StartUTC:    startUTC,
		EndUTC:      endUTC,
	}

	result, err := e.Calendar.InsertEvent(ctx, match.Practitioner.CalendarID, event)
	if err != nil {
		logger.Error("calendar event insert failed",
			zap.String("calendarId", match.Practitioner.CalendarID),
			zap.String("service", match.ServiceName),
			zap.Error(err))
		return nil, fmt.Errorf("insert for %s: %w", match.Practitioner.Name, ErrBookingFailed)
	}

	display := fmt.Sprintf("%s %s",
		startLocal.Format("Monday, January 02 at 03:04 PM"),
		TimezoneAbbrev(startLocal, clinic.Timezone))

	logger.Info("appointment booked",
		zap.String("eventId", result.EventID),
		zap.String("practitioner", match.Practitioner.Name),
		zap.String("service", match.ServiceName),
		zap.String("start", startUTC.Format(time.RFC3339)))

	return &models.BookingConfirmation{
		EventID:          result.EventID,
		EventLink:        result.EventLink,
		PractitionerName: match.Practitioner.Name,
		ServiceName:      match.ServiceName,
		DurationMinutes:  match.DurationMinutes,
		StartUTC:         startUTC,
		StartLocal:       startLocal,
		Display:          display,
	}, nil
}

func eventDescription(clinic *models.Clinic, match *models.ServiceMatch, req BookingRequest) string {
	return fmt.Sprintf(
		"Patient: %s\nPhone: %s\nService: %s\nDuration: %d minutes\nPractitioner: %s\n\nClinic: %s\nAddress: %s",
		req.PatientName,
		req.PatientPhone,
		match.ServiceName,
		match.DurationMinutes,
		match.Practitioner.Name,
		clinic.Name,
		clinic.Address,
	)
}
