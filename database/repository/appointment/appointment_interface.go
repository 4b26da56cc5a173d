package appointmentRepo

import "medcrm/models"

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// List retrieves appointments matching the filter.
	List(filter models.AppointmentFilter) ([]models.Appointment, error)
	// ListByDoctorDate retrieves a doctor's appointments for one calendar date.
	ListByDoctorDate(doctorID, date string) ([]models.Appointment, error)
	// Create inserts a new appointment.
	Create(appt *models.Appointment) error
	// Update modifies an existing appointment.
	Update(appt *models.Appointment) error
	// Delete removes an appointment by its ID.
	Delete(id string) error
}
