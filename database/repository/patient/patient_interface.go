package patientRepo

import "clinicdesk/models"

// PatientRepository defines persistence operations for chat patients.
type PatientRepository interface {
	// GetOrCreate returns the patient for the phone/clinic pair, creating the
	// record on first contact. A non-empty name updates the stored one.
	GetOrCreate(phoneNumber, clinicID, name string) (*models.Patient, error)
	GetByID(id string) (*models.Patient, error)
}
