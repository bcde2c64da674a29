package scheduling

import (
	"strconv"
	"strings"

	"clinicdesk/config"
	"clinicdesk/models"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// HoursFor returns the clinic's open and close hours as integer local hours.
// Explicit clinic configuration wins over the process-wide defaults; a
// malformed configuration degrades to the defaults rather than failing.
// No per-weekday variation is modeled.
func HoursFor(clinic *models.Clinic) (openHour, closeHour int) {
	openHour = config.AppConfig.DefaultStartHour
	closeHour = config.AppConfig.DefaultEndHour

	if clinic == nil || clinic.Config == nil || clinic.Config.WorkingHours == nil {
		return openHour, closeHour
	}

	wh := clinic.Config.WorkingHours
	start, okStart := parseHour(wh.Start)
	end, okEnd := parseHour(wh.End)
	if !okStart || !okEnd {
		utils.GetLogger().Warn("malformed working hours config, using defaults",
			zap.String("clinic", clinic.ID),
			zap.String("start", wh.Start),
			zap.String("end", wh.End))
		return openHour, closeHour
	}
	return start, end
}

// parseHour reads the hour component of "HH:MM" text.
func parseHour(value string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
