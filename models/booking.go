package models

import "time"

// ServiceMatch is the practitioner/service/duration resolved for a requested
// service string. Ephemeral: recomputed per request, never cached.
type ServiceMatch struct {
	Practitioner    Practitioner
	ServiceName     string
	DurationMinutes int
}

// BookingConfirmation is returned on a successful calendar commit.
type BookingConfirmation struct {
	EventID          string    `json:"eventId"`
	EventLink        string    `json:"eventLink,omitempty"`
	PractitionerName string    `json:"practitionerName"`
	ServiceName      string    `json:"serviceName"`
	DurationMinutes  int       `json:"durationMinutes"`
	StartUTC         time.Time `json:"startUtc"`
	StartLocal       time.Time `json:"startLocal"`
	// Display is the clinic-local rendering, e.g.
	// "Monday, July 21 at 09:00 AM PKT".
	Display string `json:"display"`
}

// Appointment is the persisted record of a committed booking.
type Appointment struct {
	ID               string    `bson:"id" json:"id"`
	ClinicID         string    `bson:"clinicId" json:"clinicId"`
	PatientID        string    `bson:"patientId" json:"patientId"`
	PatientName      string    `bson:"patientName" json:"patientName"`
	PatientPhone     string    `bson:"patientPhone,omitempty" json:"patientPhone,omitempty"`
	PractitionerName string    `bson:"practitionerName" json:"practitionerName"`
	CalendarID       string    `bson:"calendarId" json:"calendarId"`
	ServiceName      string    `bson:"serviceName" json:"serviceName"`
	DurationMinutes  int       `bson:"durationMinutes" json:"durationMinutes"`
	StartUTC         time.Time `bson:"startUtc" json:"startUtc"`
	EventID          string    `bson:"eventId" json:"eventId"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClinicID      string `json:"clinicId"`
	PatientID     string `json:"patientId"`
	Display       string `json:"display"`
	ServiceName   string `json:"serviceName"`
	ClinicName    string `json:"clinicName"`
	ClinicPhone   string `json:"clinicPhone"`
}
