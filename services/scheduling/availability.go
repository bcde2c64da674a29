package scheduling

import (
	"context"
	"fmt"

	"clinicdesk/models"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// AvailableSlots is the read path: resolve the practitioner, normalize the
// date, generate candidate windows and drop the ones colliding with the
// practitioner's existing calendar commitments.
func (e *DefaultEngine) AvailableSlots(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]models.CandidateSlot, error) {
	logger := utils.GetLogger()

	match, err := ResolveService(serviceText, clinic.Practitioners)
	if err != nil {
		return nil, err
	}
	if match.Practitioner.CalendarID == "" {
		logger.Warn("practitioner has no calendar id",
			zap.String("practitioner", match.Practitioner.Name))
		return nil, fmt.Errorf("practitioner %s has no calendar id: %w",
			match.Practitioner.Name, ErrCalendarUnavailable)
	}

	nowLocal := e.now().In(ClinicLocation(clinic.Timezone))
	date := NormalizeDate(dateText, nowLocal)

	candidates := GenerateSlots(clinic, date, match.DurationMinutes, nowLocal)
	if len(candidates) == 0 {
		return nil, nil
	}

	if e.Calendar == nil {
		return nil, fmt.Errorf("calendar client not initialized: %w", ErrCalendarUnavailable)
	}

	// One busy query per request, spanning the candidate boundaries in UTC.
	windowStart := candidates[0].StartUTC
	windowEnd := candidates[len(candidates)-1].EndUTC
	busy, err := e.Calendar.FreeBusy(ctx, match.Practitioner.CalendarID, windowStart, windowEnd)
	if err != nil {
		logger.Error("freebusy query failed",
			zap.String("calendarId", match.Practitioner.CalendarID),
			zap.String("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("busy lookup for %s: %w", match.Practitioner.Name, ErrCalendarUnavailable)
	}

	free := FilterConflicts(candidates, busy)
	logger.Debug("availability computed",
		zap.String("service", match.ServiceName),
		zap.String("practitioner", match.Practitioner.Name),
		zap.String("date", date),
		zap.Int("candidates", len(candidates)),
		zap.Int("busy", len(busy)),
		zap.Int("free", len(free)))
	return free, nil
}

// SlotDisplay renders a candidate in the tool-protocol list format,
// "YYYY-MM-DD hh:mm AM".
func SlotDisplay(slot models.CandidateSlot) string {
	return slot.StartLocal.Format(dateLayout) + " " + slot.TimeDisplay
}
