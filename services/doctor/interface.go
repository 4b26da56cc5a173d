package doctor

import (
	appointmentRepo "medcrm/database/repository/appointment"
	doctorRepo "medcrm/database/repository/doctor"
	"medcrm/models"
)

// DoctorService exposes roster management and availability editing.
type DoctorService interface {
	// Roster
	CreateDoctor(req models.CreateDoctorRequest) (*models.Doctor, error)
	GetDoctorByID(id string) (*models.Doctor, error)
	ListDoctors(activeOnly bool) ([]models.Doctor, error)
	UpdateDoctor(id string, updates map[string]interface{}) (*models.Doctor, error)
	DeleteDoctor(id string) error

	// Weekly availability
	SetDayEnabled(doctorID string, day models.WeekdayKey, enabled bool) (*models.Doctor, error)
	AddSlot(doctorID string, day models.WeekdayKey) (*models.Doctor, error)
	UpdateSlot(doctorID string, day models.WeekdayKey, slotID, field, value string) (*models.Doctor, error)
	RemoveSlot(doctorID string, day models.WeekdayKey, slotID string) (*models.Doctor, error)

	// Date overrides
	AddOverride(doctorID string, req models.AddDateOverrideRequest) (*models.Doctor, error)
	UpdateOverride(doctorID, overrideID string, patch models.DateOverridePatch) (*models.Doctor, error)
	RemoveOverride(doctorID, overrideID string) (*models.Doctor, error)

	// Derived
	FreeSlots(doctorID, date string) ([]models.AvailableWindow, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo         doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
}
