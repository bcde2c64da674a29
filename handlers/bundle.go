package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoint
	HandleChat gin.HandlerFunc

	// Clinic endpoints
	ListClinicsHandler       gin.HandlerFunc
	GetClinicHandler         gin.HandlerFunc
	GetClinicServicesHandler gin.HandlerFunc
	CreateClinicHandler      gin.HandlerFunc
	UpdateClinicHandler      gin.HandlerFunc
	DeleteClinicHandler      gin.HandlerFunc

	// Appointment endpoints
	GetSlotsHandler               gin.HandlerFunc
	BookAppointmentHandler        gin.HandlerFunc
	GetPatientAppointmentsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the concrete handlers into a bundle.
func NewHandlerBundle(chat *ChatHandler, clinics *ClinicHandler, appointments *AppointmentHandler) *HandlerBundle {
	return &HandlerBundle{
		HandleChat: chat.HandleChat,

		ListClinicsHandler:       clinics.ListClinicsHandler,
		GetClinicHandler:         clinics.GetClinicHandler,
		GetClinicServicesHandler: clinics.GetClinicServicesHandler,
		CreateClinicHandler:      clinics.CreateClinicHandler,
		UpdateClinicHandler:      clinics.UpdateClinicHandler,
		DeleteClinicHandler:      clinics.DeleteClinicHandler,

		GetSlotsHandler:               appointments.GetSlotsHandler,
		BookAppointmentHandler:        appointments.BookAppointmentHandler,
		GetPatientAppointmentsHandler: appointments.GetPatientAppointmentsHandler,
	}
}
