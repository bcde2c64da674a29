package scheduling

import (
	"strings"
	"time"
)

// ClinicLocation returns the *time.Location for a clinic timezone name.
// Falls back to UTC if the timezone is invalid or empty.
func ClinicLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TimezoneAbbrev renders the zone abbreviation for t, e.g. "PKT". Zones
// without a letter abbreviation format as a numeric offset; in that case the
// last segment of the IANA name is used instead, matching the display the
// clinics expect.
func TimezoneAbbrev(t time.Time, timezoneName string) string {
	abbr := t.Format("MST")
	if abbr == "" || strings.HasPrefix(abbr, "+") || strings.HasPrefix(abbr, "-") {
		if i := strings.LastIndex(timezoneName, "/"); i >= 0 {
			return timezoneName[i+1:]
		}
		return timezoneName
	}
	return abbr
}
