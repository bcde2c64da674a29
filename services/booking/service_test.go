package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clinicdesk/models"
	"clinicdesk/services/scheduling"
)

type fakeEngine struct {
	slots   []models.CandidateSlot
	slotErr error
	conf    *models.BookingConfirmation
	bookErr error

	bookedReq scheduling.BookingRequest
}

func (f *fakeEngine) AvailableSlots(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]models.CandidateSlot, error) {
	return f.slots, f.slotErr
}

func (f *fakeEngine) BookAppointment(ctx context.Context, clinic *models.Clinic, req scheduling.BookingRequest) (*models.BookingConfirmation, error) {
	f.bookedReq = req
	return f.conf, f.bookErr
}

type fakeAppointments struct {
	created []*models.Appointment
	err     error
}

func (f *fakeAppointments) Create(appt *models.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, appt)
	return nil
}

func (f *fakeAppointments) GetByID(id string) (*models.Appointment, error) { return nil, nil }

func (f *fakeAppointments) GetByPatientPhone(clinicID, phone string, limit int) ([]models.Appointment, error) {
	return nil, nil
}

func demoClinic() *models.Clinic {
	return &models.Clinic{
		ID:      "demo-clinic",
		Name:    "Johar Town Medical & Dental Centre",
		Address: "Plot 367, J3, Johar Town, Lahore",
		Phone:   "042-35714448",
	}
}

func demoConfirmation() *models.BookingConfirmation {
	return &models.BookingConfirmation{
		EventID:          "evt-1",
		PractitionerName: "Dr. Azeem Rauf",
		ServiceName:      "Braces",
		DurationMinutes:  60,
		StartUTC:         time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		Display:          "Tuesday, September 01 at 02:30 PM PKT",
	}
}

func TestAvailableSlotDisplays(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	engine := &fakeEngine{
		slots: []models.CandidateSlot{
			{StartLocal: time.Date(2026, 9, 1, 9, 0, 0, 0, loc), TimeDisplay: "09:00 AM"},
			{StartLocal: time.Date(2026, 9, 1, 9, 30, 0, 0, loc), TimeDisplay: "09:30 AM"},
		},
	}
	svc := &DefaultBookingService{Engine: engine}

	displays, err := svc.AvailableSlotDisplays(context.Background(), demoClinic(), "Braces", "2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2026-09-01 09:00 AM", "2026-09-01 09:30 AM"}
	if len(displays) != len(want) {
		t.Fatalf("got %d displays, want %d", len(displays), len(want))
	}
	for i := range want {
		if displays[i] != want[i] {
			t.Errorf("display[%d] = %q, want %q", i, displays[i], want[i])
		}
	}
}

func TestAvailableSlotDisplays_EmptyIsNotNilError(t *testing.T) {
	svc := &DefaultBookingService{Engine: &fakeEngine{}}

	displays, err := svc.AvailableSlotDisplays(context.Background(), demoClinic(), "Braces", "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if displays == nil || len(displays) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", displays)
	}
}

func TestAvailableSlotDisplays_PropagatesEngineError(t *testing.T) {
	engine := &fakeEngine{slotErr: scheduling.ErrCalendarUnavailable}
	svc := &DefaultBookingService{Engine: engine}

	_, err := svc.AvailableSlotDisplays(context.Background(), demoClinic(), "Braces", "today")
	if !errors.Is(err, scheduling.ErrCalendarUnavailable) {
		t.Fatalf("expected ErrCalendarUnavailable, got %v", err)
	}
}

func TestBookAppointment_RecordsAppointment(t *testing.T) {
	engine := &fakeEngine{conf: demoConfirmation()}
	store := &fakeAppointments{}
	svc := &DefaultBookingService{Engine: engine, Appointments: store}
	patient := &models.Patient{ID: "pat-1", PhoneNumber: "0300-1234567"}

	conf, err := svc.BookAppointment(context.Background(), demoClinic(), patient, scheduling.BookingRequest{
		ServiceText: "Braces",
		PatientName: "Ali Raza",
		Slot:        "2026-09-01 02:30 PM",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.EventID != "evt-1" {
		t.Errorf("EventID = %q", conf.EventID)
	}

	if len(store.created) != 1 {
		t.Fatalf("expected one stored appointment, got %d", len(store.created))
	}
	appt := store.created[0]
	if appt.ID == "" {
		t.Error("appointment record has no id")
	}
	if appt.PatientID != "pat-1" {
		t.Errorf("PatientID = %q", appt.PatientID)
	}
	// Phone absent from the request falls back to the patient record.
	if appt.PatientPhone != "0300-1234567" {
		t.Errorf("PatientPhone = %q", appt.PatientPhone)
	}
	if appt.EventID != "evt-1" || appt.ServiceName != "Braces" {
		t.Errorf("unexpected record %+v", appt)
	}
}

func TestBookAppointment_StoreFailureIsBestEffort(t *testing.T) {
	engine := &fakeEngine{conf: demoConfirmation()}
	store := &fakeAppointments{err: errors.New("mongo down")}
	svc := &DefaultBookingService{Engine: engine, Appointments: store}

	conf, err := svc.BookAppointment(context.Background(), demoClinic(), nil, scheduling.BookingRequest{
		ServiceText: "Braces",
		PatientName: "Ali Raza",
		Slot:        "2026-09-01 02:30 PM",
	})
	if err != nil {
		t.Fatalf("calendar commit must stand even if the record fails: %v", err)
	}
	if conf == nil || conf.EventID != "evt-1" {
		t.Fatalf("unexpected confirmation %+v", conf)
	}
}

func TestBookAppointment_PropagatesEngineError(t *testing.T) {
	engine := &fakeEngine{bookErr: scheduling.ErrBookingFailed}
	svc := &DefaultBookingService{Engine: engine, Appointments: &fakeAppointments{}}

	_, err := svc.BookAppointment(context.Background(), demoClinic(), nil, scheduling.BookingRequest{
		ServiceText: "Braces",
		Slot:        "2026-09-01 02:30 PM",
	})
	if !errors.Is(err, scheduling.ErrBookingFailed) {
		t.Fatalf("expected ErrBookingFailed, got %v", err)
	}
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(demoConfirmation(), demoClinic(), "Ali Raza")

	for _, want := range []string{
		"Appointment Confirmed!",
		"Patient: Ali Raza",
		"Service: Braces",
		"Duration: 60 minutes",
		"Tuesday, September 01 at 02:30 PM PKT",
		"Practitioner: Dr. Azeem Rauf",
		"Johar Town Medical & Dental Centre",
		"042-35714448",
		"arrive 10 minutes early",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("confirmation missing %q:\n%s", want, msg)
		}
	}
}
