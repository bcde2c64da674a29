package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"clinicdesk/models"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// DefaultDurationMinutes is used when an offering's duration text cannot be
// parsed. A garbled directory entry degrades, it does not fail the request.
const DefaultDurationMinutes = 30

// ResolveService finds the practitioner who performs the requested service
// and the authoritative duration for it. Matching is a deterministic two-pass
// scan in roster order: exact (case-insensitive) first, then substring in
// either direction. The first hit wins.
//
// The result is recomputed per request and must not be cached; the directory
// can change between requests.
func ResolveService(serviceText string, roster []models.Practitioner) (*models.ServiceMatch, error) {
	if len(roster) == 0 {
		return nil, fmt.Errorf("resolve %q: empty roster: %w", serviceText, ErrPractitionerNotFound)
	}

	want := strings.ToLower(strings.TrimSpace(serviceText))

	// Pass 1: exact match.
	for _, p := range roster {
		for _, svc := range p.Services {
			if strings.ToLower(svc.Name) == want {
				return matchFor(p, svc), nil
			}
		}
	}

	// Pass 2: substring match in either direction.
	for _, p := range roster {
		for _, svc := range p.Services {
			have := strings.ToLower(svc.Name)
			if strings.Contains(have, want) || strings.Contains(want, have) {
				return matchFor(p, svc), nil
			}
		}
	}

	return nil, fmt.Errorf("resolve %q: %w", serviceText, ErrPractitionerNotFound)
}

func matchFor(p models.Practitioner, svc models.ServiceOffering) *models.ServiceMatch {
	return &models.ServiceMatch{
		Practitioner:    p,
		ServiceName:     svc.Name,
		DurationMinutes: parseDurationMinutes(svc.Name, svc.Duration),
	}
}

// parseDurationMinutes reads the leading integer of duration text like
// "45 min". Parse failures are non-fatal and fall back to the default.
func parseDurationMinutes(serviceName, durationText string) int {
	fields := strings.Fields(durationText)
	if len(fields) == 0 {
		return DefaultDurationMinutes
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes <= 0 {
		utils.GetLogger().Warn("could not parse service duration, using default",
			zap.String("service", serviceName),
			zap.String("duration", durationText),
			zap.Int("default", DefaultDurationMinutes))
		return DefaultDurationMinutes
	}
	return minutes
}
