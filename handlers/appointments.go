package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "clinicdesk/database/repository/appointment"
	clinicRepo "clinicdesk/database/repository/clinic"
	patientRepo "clinicdesk/database/repository/patient"
	bookingSvc "clinicdesk/services/booking"
	"clinicdesk/services/scheduling"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the engine's read and write paths directly,
// without the chat layer.
type AppointmentHandler struct {
	Clinics      clinicRepo.ClinicRepository
	Patients     patientRepo.PatientRepository
	Appointments appointmentRepo.AppointmentRepository
	Booking      bookingSvc.BookingService
}

func NewAppointmentHandler(
	clinics clinicRepo.ClinicRepository,
	patients patientRepo.PatientRepository,
	appointments appointmentRepo.AppointmentRepository,
	booking bookingSvc.BookingService,
) *AppointmentHandler {
	return &AppointmentHandler{
		Clinics:      clinics,
		Patients:     patients,
		Appointments: appointments,
		Booking:      booking,
	}
}

// GetSlotsHandler returns free slot display strings for a service and date.
func (h *AppointmentHandler) GetSlotsHandler(c *gin.Context) {
	clinicID := c.Query("clinicId")
	service := c.Query("service")
	date := c.Query("date")
	if clinicID == "" || service == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "clinicId and service are required")
		return
	}
	if date == "" {
		date = "today"
	}

	clinic, err := h.Clinics.GetByID(clinicID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "clinic not found", clinicID)
		return
	}

	slots, err := h.Booking.AvailableSlotDisplays(c.Request.Context(), clinic, service, date)
	switch {
	case errors.Is(err, scheduling.ErrPractitionerNotFound):
		utils.JSONError(c, http.StatusNotFound, "no practitioner offers this service", service)
		return
	case errors.Is(err, scheduling.ErrCalendarUnavailable):
		// Distinct from zero free slots: the calendar could not be queried.
		utils.JSONError(c, http.StatusServiceUnavailable, "calendar unavailable", scheduling.FailureMessage(err, clinic))
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"service": service, "slots": slots})
}

// BookAppointmentHandler commits a booking for a named patient.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	var input struct {
		ClinicID     string `json:"clinicId" binding:"required"`
		Service      string `json:"service" binding:"required"`
		PatientName  string `json:"patientName" binding:"required"`
		PatientPhone string `json:"patientPhone"`
		Slot         string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	clinic, err := h.Clinics.GetByID(input.ClinicID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "clinic not found", input.ClinicID)
		return
	}

	patient, err := h.Patients.GetOrCreate(input.PatientPhone, clinic.ID, input.PatientName)
	if err != nil {
		patient = nil // booking still proceeds; only the record is degraded
	}

	req := scheduling.BookingRequest{
		ServiceText:  input.Service,
		PatientName:  input.PatientName,
		PatientPhone: input.PatientPhone,
		Slot:         input.Slot,
	}
	conf, err := h.Booking.BookAppointment(c.Request.Context(), clinic, patient, req)
	switch {
	case errors.Is(err, scheduling.ErrPractitionerNotFound):
		utils.JSONError(c, http.StatusNotFound, "no practitioner offers this service", input.Service)
		return
	case errors.Is(err, scheduling.ErrInvalidSlotFormat):
		utils.JSONError(c, http.StatusBadRequest, "invalid slot", scheduling.FailureMessage(err, clinic))
		return
	case err != nil:
		utils.JSONError(c, http.StatusBadGateway, "booking failed", scheduling.FailureMessage(err, clinic))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"confirmation": conf,
		"message":      bookingSvc.ConfirmationMessage(conf, clinic, input.PatientName),
	})
}

// GetPatientAppointmentsHandler lists a patient's bookings, newest first.
func (h *AppointmentHandler) GetPatientAppointmentsHandler(c *gin.Context) {
	clinicID := c.Query("clinicId")
	phone := c.Param("phone")
	if clinicID == "" || phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing parameters", "clinicId and phone are required")
		return
	}

	appts, err := h.Appointments.GetByPatientPhone(clinicID, phone, 10)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
