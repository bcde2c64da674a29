package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicdesk/models"
	"clinicdesk/services/scheduling"

	"github.com/gin-gonic/gin"
)

type stubClinics struct {
	clinic *models.Clinic
	err    error
}

func (s *stubClinics) GetByID(id string) (*models.Clinic, error) { return s.clinic, s.err }
func (s *stubClinics) GetAll() ([]models.Clinic, error)          { return nil, nil }
func (s *stubClinics) Create(clinic *models.Clinic) error        { return nil }
func (s *stubClinics) Update(clinic *models.Clinic) error        { return nil }
func (s *stubClinics) Delete(id string) error                    { return nil }

type stubPatients struct{}

func (s *stubPatients) GetOrCreate(phoneNumber, clinicID, name string) (*models.Patient, error) {
	return &models.Patient{ID: "pat-1", PhoneNumber: phoneNumber, ClinicID: clinicID}, nil
}
func (s *stubPatients) GetByID(id string) (*models.Patient, error) { return nil, nil }

type stubAppointments struct {
	appts []models.Appointment
}

func (s *stubAppointments) Create(appt *models.Appointment) error          { return nil }
func (s *stubAppointments) GetByID(id string) (*models.Appointment, error) { return nil, nil }
func (s *stubAppointments) GetByPatientPhone(clinicID, phone string, limit int) ([]models.Appointment, error) {
	return s.appts, nil
}

type stubBooking struct {
	slots   []string
	slotErr error
	conf    *models.BookingConfirmation
	bookErr error
}

func (s *stubBooking) AvailableSlotDisplays(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]string, error) {
	return s.slots, s.slotErr
}

func (s *stubBooking) BookAppointment(ctx context.Context, clinic *models.Clinic, patient *models.Patient, req scheduling.BookingRequest) (*models.BookingConfirmation, error) {
	return s.conf, s.bookErr
}

func handlerClinic() *models.Clinic {
	return &models.Clinic{
		ID:       "demo-clinic",
		Name:     "Johar Town Medical & Dental Centre",
		Phone:    "042-35714448",
		Timezone: "Asia/Karachi",
	}
}

func slotsRouter(booking *stubBooking, clinics *stubClinics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(clinics, &stubPatients{}, &stubAppointments{}, booking)
	r := gin.New()
	r.GET("/api/appointments/slots", h.GetSlotsHandler)
	r.POST("/api/appointments/book", h.BookAppointmentHandler)
	return r
}

func TestGetSlotsHandler_OK(t *testing.T) {
	booking := &stubBooking{slots: []string{"2026-09-01 09:00 AM"}}
	r := slotsRouter(booking, &stubClinics{clinic: handlerClinic()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/slots?clinicId=demo-clinic&service=Braces&date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Slots) != 1 || body.Slots[0] != "2026-09-01 09:00 AM" {
		t.Errorf("unexpected slots %v", body.Slots)
	}
}

func TestGetSlotsHandler_EmptyDayIsOKWithEmptyList(t *testing.T) {
	r := slotsRouter(&stubBooking{}, &stubClinics{clinic: handlerClinic()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/slots?clinicId=demo-clinic&service=Braces", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"slots":[]`) {
		t.Errorf("empty day must serialize as an empty array: %s", w.Body.String())
	}
}

func TestGetSlotsHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown service", scheduling.ErrPractitionerNotFound, http.StatusNotFound},
		{"calendar down", scheduling.ErrCalendarUnavailable, http.StatusServiceUnavailable},
		{"other failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := slotsRouter(&stubBooking{slotErr: tc.err}, &stubClinics{clinic: handlerClinic()})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/appointments/slots?clinicId=demo-clinic&service=Braces", nil)
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestGetSlotsHandler_MissingParams(t *testing.T) {
	r := slotsRouter(&stubBooking{}, &stubClinics{clinic: handlerClinic()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/slots?clinicId=demo-clinic", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestGetSlotsHandler_UnknownClinic(t *testing.T) {
	r := slotsRouter(&stubBooking{}, &stubClinics{err: errors.New("not found")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/slots?clinicId=nope&service=Braces", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestBookAppointmentHandler(t *testing.T) {
	booking := &stubBooking{
		conf: &models.BookingConfirmation{
			EventID:          "evt-1",
			PractitionerName: "Dr. Azeem Rauf",
			ServiceName:      "Braces",
			DurationMinutes:  60,
			Display:          "Tuesday, September 01 at 02:30 PM PKT",
		},
	}
	r := slotsRouter(booking, &stubClinics{clinic: handlerClinic()})

	payload := `{"clinicId":"demo-clinic","service":"Braces","patientName":"Ali Raza","patientPhone":"0300-1234567","slot":"2026-09-01 02:30 PM"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments/book", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Appointment Confirmed!") {
		t.Errorf("response missing confirmation message: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "evt-1") {
		t.Errorf("response missing event id: %s", w.Body.String())
	}
}

func TestBookAppointmentHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown service", scheduling.ErrPractitionerNotFound, http.StatusNotFound},
		{"bad slot", scheduling.ErrInvalidSlotFormat, http.StatusBadRequest},
		{"provider failure", scheduling.ErrBookingFailed, http.StatusBadGateway},
	}

	payload := `{"clinicId":"demo-clinic","service":"Braces","patientName":"Ali Raza","slot":"whenever"}`
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := slotsRouter(&stubBooking{bookErr: tc.err}, &stubClinics{clinic: handlerClinic()})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/appointments/book", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestBookAppointmentHandler_InvalidPayload(t *testing.T) {
	r := slotsRouter(&stubBooking{}, &stubClinics{clinic: handlerClinic()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments/book", strings.NewReader(`{"clinicId":"demo-clinic"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}
