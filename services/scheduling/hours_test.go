package scheduling

import (
	"testing"

	"clinicdesk/models"
)

func TestHoursFor(t *testing.T) {
	cases := []struct {
		name      string
		clinic    *models.Clinic
		wantOpen  int
		wantClose int
	}{
		{
			name:      "nil clinic uses defaults",
			clinic:    nil,
			wantOpen:  9,
			wantClose: 19,
		},
		{
			name:      "no config uses defaults",
			clinic:    &models.Clinic{ID: "c1"},
			wantOpen:  9,
			wantClose: 19,
		},
		{
			name: "explicit hours win",
			clinic: &models.Clinic{
				ID: "c1",
				Config: &models.ClinicConfig{
					WorkingHours: &models.WorkingHours{Start: "08:00", End: "20:00"},
				},
			},
			wantOpen:  8,
			wantClose: 20,
		},
		{
			name: "malformed hours fall back",
			clinic: &models.Clinic{
				ID: "c1",
				Config: &models.ClinicConfig{
					WorkingHours: &models.WorkingHours{Start: "early", End: "20:00"},
				},
			},
			wantOpen:  9,
			wantClose: 19,
		},
		{
			name: "out of range hour falls back",
			clinic: &models.Clinic{
				ID: "c1",
				Config: &models.ClinicConfig{
					WorkingHours: &models.WorkingHours{Start: "09:00", End: "25:00"},
				},
			},
			wantOpen:  9,
			wantClose: 19,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, close := HoursFor(tc.clinic)
			if open != tc.wantOpen || close != tc.wantClose {
				t.Errorf("HoursFor() = (%d, %d), want (%d, %d)", open, close, tc.wantOpen, tc.wantClose)
			}
		})
	}
}
