package models

import "time"

// CandidateSlot is a proposed, not-yet-committed appointment window.
// StartUTC/EndUTC are used for external-calendar queries; the Local fields
// are the clinic wall-clock rendering for display.
type CandidateSlot struct {
	StartUTC   time.Time `json:"startUtc"`
	EndUTC     time.Time `json:"endUtc"`
	StartLocal time.Time `json:"startLocal"`
	EndLocal   time.Time `json:"endLocal"`

	DurationMinutes int `json:"durationMinutes"`

	// Display renderings, e.g. "09:00 AM", "Monday, July 21 at 09:00 AM".
	TimeDisplay string `json:"timeDisplay"`
	FullDisplay string `json:"fullDisplay"`
	TZDisplay   string `json:"tzDisplay"`
}

// BusyInterval is an existing commitment on a practitioner's external
// calendar, half-open: [Start, End). Not owned or mutated by this engine.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the slot collides with the busy interval under
// half-open semantics.
func (s CandidateSlot) Overlaps(b BusyInterval) bool {
	return s.StartUTC.Before(b.End) && s.EndUTC.After(b.Start)
}
