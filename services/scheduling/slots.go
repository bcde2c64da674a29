package scheduling

import (
	"fmt"
	"time"

	"clinicdesk/models"
)

// bookingBufferMinutes is the fixed look-ahead applied when generating slots
// for the current day, so a patient is never offered a slot they cannot
// realistically reach in time.
const bookingBufferMinutes = 30

// GenerateSlots produces the full ordered sequence of candidate windows for
// a clinic date: contiguous [t, t+duration) tiles inside [open, close) in
// clinic-local time, with a trailing partial tile dropped. For today the
// sequence starts at now plus the booking buffer, rounded up to the next
// duration boundary and clamped to opening time.
//
// Pure function of its inputs; returns nil for invalid duration, an inverted
// hours window, or an unparsable date.
func GenerateSlots(clinic *models.Clinic, dateStr string, durationMinutes int, now time.Time) []models.CandidateSlot {
	if durationMinutes <= 0 {
		return nil
	}

	openHour, closeHour := HoursFor(clinic)
	if openHour >= closeHour {
		return nil
	}

	loc := ClinicLocation(clinic.Timezone)
	date, err := time.ParseInLocation(dateLayout, dateStr, loc)
	if err != nil {
		return nil
	}

	windowStart := time.Date(date.Year(), date.Month(), date.Day(), openHour, 0, 0, 0, loc)
	windowEnd := time.Date(date.Year(), date.Month(), date.Day(), closeHour, 0, 0, 0, loc)

	cursor := windowStart
	nowLocal := now.In(loc)
	if sameDate(date, nowLocal) {
		cursor = firstSlotToday(nowLocal, durationMinutes, loc)
		if cursor.Before(windowStart) {
			cursor = windowStart
		}
		if !cursor.Before(windowEnd) {
			return nil
		}
	}

	duration := time.Duration(durationMinutes) * time.Minute
	tzAbbr := TimezoneAbbrev(windowStart, clinic.Timezone)

	var slots []models.CandidateSlot
	for start := cursor; ; start = start.Add(duration) {
		end := start.Add(duration)
		if end.After(windowEnd) {
			break
		}

		timeOnly := start.Format("03:04 PM")
		slots = append(slots, models.CandidateSlot{
			StartUTC:        start.UTC(),
			EndUTC:          end.UTC(),
			StartLocal:      start,
			EndLocal:        end,
			DurationMinutes: durationMinutes,
			TimeDisplay:     timeOnly,
			FullDisplay:     fmt.Sprintf("%s at %s", start.Format("Monday, January 02"), timeOnly),
			TZDisplay:       timeOnly + " " + tzAbbr,
		})
	}
	return slots
}

// firstSlotToday applies the booking buffer to the current time and rounds
// the minute up to the next multiple of the duration, carrying into the hour.
func firstSlotToday(nowLocal time.Time, durationMinutes int, loc *time.Location) time.Time {
	buffer := nowLocal.Add(bookingBufferMinutes * time.Minute)
	nextMinute := ((buffer.Minute() / durationMinutes) + 1) * durationMinutes
	// time.Date normalizes an overflowing minute into the hour.
	return time.Date(buffer.Year(), buffer.Month(), buffer.Day(), buffer.Hour(), nextMinute, 0, 0, loc)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FilterConflicts removes candidates that overlap any busy interval under
// half-open semantics. Order and duration of survivors are unchanged.
func FilterConflicts(candidates []models.CandidateSlot, busy []models.BusyInterval) []models.CandidateSlot {
	if len(busy) == 0 {
		return candidates
	}
	var free []models.CandidateSlot
	for _, slot := range candidates {
		conflict := false
		for _, b := range busy {
			if slot.Overlaps(b) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, slot)
		}
	}
	return free
}
