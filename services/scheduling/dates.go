package scheduling

import (
	"strings"
	"time"

	"clinicdesk/utils"

	"go.uber.org/zap"
)

// dateLayout is the ISO calendar-date format used across the tool protocol.
const dateLayout = "2006-01-02"

// NormalizeDate maps relative, ambiguous or garbled date text onto a concrete
// bookable date, anchored to now in its location. The function is total: any
// input yields a YYYY-MM-DD string, and for a fixed now it is idempotent.
//
// Rules, in order: "today" and "tomorrow" keywords; ISO parse with
// fall-back-to-today; dates more than a year in the past are treated as
// placeholder junk; nearer past dates are silently moved to today.
func NormalizeDate(dateText string, now time.Time) string {
	logger := utils.GetLogger()
	today := dateOnly(now)

	switch strings.ToLower(strings.TrimSpace(dateText)) {
	case "today":
		return today.Format(dateLayout)
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(dateLayout)
	}

	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateText), now.Location())
	if err != nil {
		logger.Warn("invalid date format, using today",
			zap.String("date", dateText))
		return today.Format(dateLayout)
	}

	switch {
	case parsed.Before(today.AddDate(0, 0, -365)):
		logger.Warn("date is over a year in the past, using today",
			zap.String("date", dateText))
		return today.Format(dateLayout)
	case parsed.Before(today):
		logger.Warn("date is in the past, using today",
			zap.String("date", dateText))
		return today.Format(dateLayout)
	default:
		return parsed.Format(dateLayout)
	}
}

// dateOnly truncates t to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
