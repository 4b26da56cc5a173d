// File: services/appointment/service.go
package appointment

import (
	"errors"
	"fmt"
	"time"

	"medcrm/models"
	"medcrm/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSlotUnavailable signals a booking outside the doctor's open windows.
var ErrSlotUnavailable = errors.New("the requested time is not available for this doctor")

// ErrInvalidTransition signals a status change the workflow does not allow.
var ErrInvalidTransition = errors.New("invalid appointment status transition")

// allowedTransitions encodes the appointment workflow. Terminal states have
// no outgoing edges.
var allowedTransitions = map[string][]string{
	models.AppointmentScheduled: {models.AppointmentConfirmed, models.AppointmentCancelled, models.AppointmentNoShow},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow},
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	switch status {
	case models.AppointmentScheduled, models.AppointmentConfirmed,
		models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow:
		return true
	}
	return false
}

// fitsOpenWindow reports whether [start, end) lies inside one of the doctor's
// free windows for the date.
func (s *DefaultAppointmentService) fitsOpenWindow(doctorID, date, start, end string) (bool, error) {
	windows, err := s.Doctors.FreeSlots(doctorID, date)
	if err != nil {
		return false, err
	}
	for _, w := range windows {
		if w.Start <= start && end <= w.End {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultAppointmentService) CreateAppointment(req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	if req.Start >= req.End {
		return nil, fmt.Errorf("start %q must be before end %q", req.Start, req.End)
	}

	ok, err := s.fitsOpenWindow(req.DoctorID, req.Date, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSlotUnavailable
	}

	source := req.Source
	if source == "" {
		source = "dashboard"
	}
	now := time.Now()
	appt := &models.Appointment{
		ID:           uuid.NewString(),
		DoctorID:     req.DoctorID,
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		Date:         req.Date,
		Start:        req.Start,
		End:          req.End,
		Reason:       req.Reason,
		Status:       models.AppointmentScheduled,
		Source:       source,
		CallLogID:    req.CallLogID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(appt); err != nil {
		utils.GetLogger().Error("CreateAppointment: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.Notifier.Success("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("start", appt.Start),
	)
	return appt, nil
}

func (s *DefaultAppointmentService) GetAppointmentByID(id string) (*models.Appointment, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultAppointmentService) ListAppointments(filter models.AppointmentFilter) ([]models.Appointment, error) {
	return s.Repo.List(filter)
}

func (s *DefaultAppointmentService) UpdateStatus(id, status string) (*models.Appointment, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("unknown appointment status %q", status)
	}
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt.Status == status {
		return appt, nil
	}
	if !transitionAllowed(appt.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
	}

	appt.Status = status
	appt.UpdatedAt = time.Now()
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	switch status {
	case models.AppointmentCancelled:
		s.Notifier.Warning("appointment cancelled", zap.String("appointmentID", id))
	case models.AppointmentNoShow:
		s.Notifier.Warning("appointment marked as no-show", zap.String("appointmentID", id))
	default:
		s.Notifier.Info("appointment status updated",
			zap.String("appointmentID", id), zap.String("status", status))
	}
	return appt, nil
}

func (s *DefaultAppointmentService) Reschedule(id, date, start, end string) (*models.Appointment, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if start >= end {
		return nil, fmt.Errorf("start %q must be before end %q", start, end)
	}
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.AppointmentCompleted || appt.Status == models.AppointmentCancelled {
		return nil, fmt.Errorf("%w: cannot reschedule a %s appointment", ErrInvalidTransition, appt.Status)
	}

	// The slot being moved still occupies its old window, so an in-place
	// reschedule of the same appointment to the same window is allowed.
	same := appt.Date == date && appt.Start == start && appt.End == end
	if !same {
		ok, err := s.fitsOpenWindow(appt.DoctorID, date, start, end)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSlotUnavailable
		}
	}

	appt.Date = date
	appt.Start = start
	appt.End = end
	appt.UpdatedAt = time.Now()
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	s.Notifier.Info("appointment rescheduled",
		zap.String("appointmentID", id), zap.String("date", date), zap.String("start", start))
	return appt, nil
}

func (s *DefaultAppointmentService) DeleteAppointment(id string) error {
	return s.Repo.Delete(id)
}
