package appointment

import (
	"fmt"

	appointmentRepo "medcrm/database/repository/appointment"
	"medcrm/models"
	"medcrm/services/doctor"
	"medcrm/services/notification"
)

// AppointmentService manages the clinic's booked visits.
type AppointmentService interface {
	CreateAppointment(req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointmentByID(id string) (*models.Appointment, error)
	ListAppointments(filter models.AppointmentFilter) ([]models.Appointment, error)
	UpdateStatus(id, status string) (*models.Appointment, error)
	Reschedule(id, date, start, end string) (*models.Appointment, error)
	DeleteAppointment(id string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Doctors  doctor.DoctorService
	Notifier notification.Notifier
}

func NewDefaultAppointmentService(repo appointmentRepo.AppointmentRepository, doctors doctor.DoctorService, notifier notification.Notifier) (*DefaultAppointmentService, error) {
	if repo == nil || doctors == nil {
		return nil, fmt.Errorf("appointment service initialization error: missing dependency")
	}
	if notifier == nil {
		notifier = notification.NewLogNotifier()
	}
	return &DefaultAppointmentService{Repo: repo, Doctors: doctors, Notifier: notifier}, nil
}
