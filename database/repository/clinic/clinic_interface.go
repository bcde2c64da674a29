package clinicRepo

import "clinicdesk/models"

// ClinicRepository defines persistence operations for the clinic directory.
type ClinicRepository interface {
	GetByID(id string) (*models.Clinic, error)
	GetAll() ([]models.Clinic, error)
	Create(clinic *models.Clinic) error
	Update(clinic *models.Clinic) error
	Delete(id string) error
}
