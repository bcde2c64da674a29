package appointmentRepo

import "clinicdesk/models"

// AppointmentRepository persists committed bookings. The engine itself holds
// no lifecycle for a booking after commit; this record is for listing and
// reminders only.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// GetByPatientPhone lists a patient's appointments, newest first.
	GetByPatientPhone(clinicID, phone string, limit int) ([]models.Appointment, error)
}
