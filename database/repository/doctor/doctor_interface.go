package doctorRepo

import (
	"medcrm/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DoctorRepository defines methods for doctor roster data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetAll retrieves the roster; activeOnly restricts it to active doctors.
	GetAll(activeOnly bool) ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// Update modifies an existing doctor record.
	Update(doctor *models.Doctor) error
	// UpdateWithDocument patches a doctor document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error
}
