package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"clinicdesk/models"
	"clinicdesk/services/scheduling"
)

type fakeBooking struct {
	slots    []string
	slotErr  error
	conf     *models.BookingConfirmation
	bookErr  error
	bookedAs scheduling.BookingRequest
}

func (f *fakeBooking) AvailableSlotDisplays(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]string, error) {
	return f.slots, f.slotErr
}

func (f *fakeBooking) BookAppointment(ctx context.Context, clinic *models.Clinic, patient *models.Patient, req scheduling.BookingRequest) (*models.BookingConfirmation, error) {
	f.bookedAs = req
	return f.conf, f.bookErr
}

type fakeChats struct {
	saved []models.ChatMessage
}

func (f *fakeChats) GetOrCreateSession(patientID, clinicID string) (*models.ChatSession, error) {
	return &models.ChatSession{ID: "sess-1", PatientID: patientID, ClinicID: clinicID}, nil
}

func (f *fakeChats) SaveMessage(msg *models.ChatMessage) error {
	f.saved = append(f.saved, *msg)
	return nil
}

func (f *fakeChats) GetHistory(sessionID string, limit int) ([]models.ChatMessage, error) {
	return nil, nil
}

func (f *fakeChats) ClearHistory(patientID, clinicID string) error { return nil }

func chatFixture(booking *fakeBooking, chats *fakeChats) (*DefaultChatService, *models.Clinic, *models.Patient, *models.ChatSession) {
	clinic := promptClinic()
	patient := &models.Patient{ID: "pat-1", ClinicID: clinic.ID, PhoneNumber: "0300-1234567"}
	session := &models.ChatSession{ID: "sess-1", ClinicID: clinic.ID, PatientID: patient.ID}
	svc := &DefaultChatService{
		Chats:   chats,
		Booking: booking,
		Now: func() time.Time {
			return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
		},
	}
	return svc, clinic, patient, session
}

func TestToolHandler_AvailableSlots(t *testing.T) {
	booking := &fakeBooking{slots: []string{"2026-09-01 09:00 AM", "2026-09-01 09:30 AM"}}
	chats := &fakeChats{}
	svc, clinic, patient, session := chatFixture(booking, chats)

	handle := svc.toolHandler(clinic, patient, session)
	result := handle(context.Background(), "available_slots", map[string]any{
		"service": "Hydrafacial",
		"date":    "tomorrow",
	})

	if result["error"] != nil {
		t.Fatalf("unexpected error: %v", result["error"])
	}
	// The relative date is normalized before it reaches the engine.
	if result["date"] != "2026-08-30" {
		t.Errorf("date = %v, want 2026-08-30", result["date"])
	}
	slots, ok := result["slots"].([]string)
	if !ok || len(slots) != 2 {
		t.Fatalf("unexpected slots %v", result["slots"])
	}

	// The invocation lands on the transcript as a tool message.
	if len(chats.saved) != 1 {
		t.Fatalf("expected one recorded message, got %d", len(chats.saved))
	}
	if chats.saved[0].Role != models.RoleTool || chats.saved[0].FunctionName != "available_slots" {
		t.Errorf("unexpected transcript record %+v", chats.saved[0])
	}
}

func TestToolHandler_AvailableSlotsError(t *testing.T) {
	booking := &fakeBooking{slotErr: scheduling.ErrCalendarUnavailable}
	chats := &fakeChats{}
	svc, clinic, patient, session := chatFixture(booking, chats)

	handle := svc.toolHandler(clinic, patient, session)
	result := handle(context.Background(), "available_slots", map[string]any{
		"service": "Hydrafacial",
		"date":    "today",
	})

	errText, ok := result["error"].(string)
	if !ok {
		t.Fatalf("expected error text, got %v", result)
	}
	if !strings.Contains(errText, clinic.Phone) {
		t.Errorf("failure message missing clinic phone: %q", errText)
	}
}

func TestToolHandler_BookAppointment(t *testing.T) {
	booking := &fakeBooking{
		conf: &models.BookingConfirmation{
			EventID:          "evt-1",
			PractitionerName: "Dr. Wajeeha Nusrat",
			ServiceName:      "Hydrafacial",
			DurationMinutes:  45,
			Display:          "Tuesday, September 01 at 02:30 PM PKT",
		},
	}
	chats := &fakeChats{}
	svc, clinic, patient, session := chatFixture(booking, chats)

	handle := svc.toolHandler(clinic, patient, session)
	result := handle(context.Background(), "book_appointment", map[string]any{
		"service":      "Hydrafacial",
		"patient_name": "Sana Khan",
		"slot":         "2026-09-01 02:30 PM",
	})

	text, ok := result["result"].(string)
	if !ok {
		t.Fatalf("expected result text, got %v", result)
	}
	if !strings.Contains(text, "Appointment Confirmed!") {
		t.Errorf("unexpected confirmation %q", text)
	}

	// The phone number missing from the tool args falls back to the
	// patient record established at the start of the chat.
	if booking.bookedAs.PatientPhone != "0300-1234567" {
		t.Errorf("PatientPhone = %q", booking.bookedAs.PatientPhone)
	}
	if booking.bookedAs.PatientName != "Sana Khan" {
		t.Errorf("PatientName = %q", booking.bookedAs.PatientName)
	}
}

func TestToolHandler_BookAppointmentFailure(t *testing.T) {
	booking := &fakeBooking{bookErr: scheduling.ErrInvalidSlotFormat}
	chats := &fakeChats{}
	svc, clinic, patient, session := chatFixture(booking, chats)

	handle := svc.toolHandler(clinic, patient, session)
	result := handle(context.Background(), "book_appointment", map[string]any{
		"service": "Hydrafacial",
		"slot":    "whenever",
	})

	text, ok := result["result"].(string)
	if !ok {
		t.Fatalf("expected result text, got %v", result)
	}
	if !strings.Contains(text, "couldn't understand that appointment time") {
		t.Errorf("unexpected failure text %q", text)
	}
}

func TestToolHandler_UnknownFunction(t *testing.T) {
	chats := &fakeChats{}
	svc, clinic, patient, session := chatFixture(&fakeBooking{}, chats)

	handle := svc.toolHandler(clinic, patient, session)
	result := handle(context.Background(), "order_pizza", nil)
	if result["error"] == nil {
		t.Fatal("expected an error for an unknown function")
	}
}
