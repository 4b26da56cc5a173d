package appointment

import (
	"errors"
	"fmt"
	"testing"

	"medcrm/models"
	"medcrm/services/notification"
)

// mockApptRepo is an in-memory AppointmentRepository.
type mockApptRepo struct {
	appointments []models.Appointment
}

func (m *mockApptRepo) GetByID(id string) (*models.Appointment, error) {
	for _, a := range m.appointments {
		if a.ID == id {
			dup := a
			return &dup, nil
		}
	}
	return nil, fmt.Errorf("appointment with id %s not found", id)
}

func (m *mockApptRepo) List(filter models.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if filter.DoctorID != "" && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockApptRepo) ListByDoctorDate(doctorID, date string) ([]models.Appointment, error) {
	return m.List(models.AppointmentFilter{DoctorID: doctorID, Date: date})
}

func (m *mockApptRepo) Create(a *models.Appointment) error {
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *mockApptRepo) Update(a *models.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == a.ID {
			m.appointments[i] = *a
			return nil
		}
	}
	return fmt.Errorf("appointment with id %s not found", a.ID)
}

func (m *mockApptRepo) Delete(id string) error {
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("appointment with id %s not found", id)
}

// stubDoctorService serves fixed free windows; only FreeSlots is exercised
// by the appointment service.
type stubDoctorService struct {
	windows map[string][]models.AvailableWindow // keyed by date
}

func (s *stubDoctorService) FreeSlots(doctorID, date string) ([]models.AvailableWindow, error) {
	return s.windows[date], nil
}

func (s *stubDoctorService) CreateDoctor(models.CreateDoctorRequest) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) GetDoctorByID(string) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) ListDoctors(bool) ([]models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) UpdateDoctor(string, map[string]interface{}) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) DeleteDoctor(string) error { return errors.New("not implemented") }
func (s *stubDoctorService) SetDayEnabled(string, models.WeekdayKey, bool) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) AddSlot(string, models.WeekdayKey) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) UpdateSlot(string, models.WeekdayKey, string, string, string) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) RemoveSlot(string, models.WeekdayKey, string) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) AddOverride(string, models.AddDateOverrideRequest) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) UpdateOverride(string, string, models.DateOverridePatch) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDoctorService) RemoveOverride(string, string) (*models.Doctor, error) {
	return nil, errors.New("not implemented")
}

func newTestService(windows map[string][]models.AvailableWindow) (*DefaultAppointmentService, *mockApptRepo) {
	repo := &mockApptRepo{}
	svc, _ := NewDefaultAppointmentService(repo, &stubDoctorService{windows: windows}, notification.NewLogNotifier())
	return svc, repo
}

func openDay(date string) map[string][]models.AvailableWindow {
	return map[string][]models.AvailableWindow{
		date: {{Start: "09:00", End: "17:00", Label: "09:00 - 17:00"}},
	}
}

func TestCreateAppointmentInsideOpenWindow(t *testing.T) {
	svc, repo := newTestService(openDay("2026-09-07"))

	appt, err := svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID:    "d1",
		PatientName: "Maria",
		Date:        "2026-09-07",
		Start:       "10:00",
		End:         "10:30",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if appt.Status != models.AppointmentScheduled {
		t.Errorf("status = %s, want scheduled", appt.Status)
	}
	if appt.Source != "dashboard" {
		t.Errorf("source defaults to dashboard, got %s", appt.Source)
	}
	if appt.ID == "" {
		t.Error("appointment needs a generated id")
	}
	if len(repo.appointments) != 1 {
		t.Error("appointment not persisted")
	}
}

func TestCreateAppointmentOutsideWindow(t *testing.T) {
	svc, _ := newTestService(openDay("2026-09-07"))

	_, err := svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID:    "d1",
		PatientName: "Maria",
		Date:        "2026-09-07",
		Start:       "17:00",
		End:         "17:30",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("err = %v, want ErrSlotUnavailable", err)
	}

	// A date with no windows at all also rejects.
	_, err = svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID:    "d1",
		PatientName: "Maria",
		Date:        "2026-09-08",
		Start:       "10:00",
		End:         "10:30",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("err = %v, want ErrSlotUnavailable", err)
	}
}

func TestCreateAppointmentRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(openDay("2026-09-07"))

	if _, err := svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID: "d1", PatientName: "Maria", Date: "07/09/2026", Start: "10:00", End: "10:30",
	}); err == nil {
		t.Error("malformed date must be rejected")
	}

	if _, err := svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID: "d1", PatientName: "Maria", Date: "2026-09-07", Start: "11:00", End: "10:30",
	}); err == nil {
		t.Error("inverted range must be rejected")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, _ := newTestService(openDay("2026-09-07"))
	appt, err := svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID: "d1", PatientName: "Maria", Date: "2026-09-07", Start: "10:00", End: "10:30",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	// scheduled -> completed skips confirmation and is rejected.
	if _, err := svc.UpdateStatus(appt.ID, models.AppointmentCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("scheduled->completed: err = %v, want ErrInvalidTransition", err)
	}

	got, err := svc.UpdateStatus(appt.ID, models.AppointmentConfirmed)
	if err != nil {
		t.Fatalf("scheduled->confirmed: %v", err)
	}
	if got.Status != models.AppointmentConfirmed {
		t.Errorf("status = %s", got.Status)
	}

	if _, err := svc.UpdateStatus(appt.ID, models.AppointmentCompleted); err != nil {
		t.Fatalf("confirmed->completed: %v", err)
	}

	// Completed is terminal.
	if _, err := svc.UpdateStatus(appt.ID, models.AppointmentCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("completed->cancelled: err = %v, want ErrInvalidTransition", err)
	}

	// Re-applying the current status is a no-op, not an error.
	if _, err := svc.UpdateStatus(appt.ID, models.AppointmentCompleted); err != nil {
		t.Errorf("idempotent status update failed: %v", err)
	}

	if _, err := svc.UpdateStatus(appt.ID, "archived"); err == nil {
		t.Error("unknown status must be rejected")
	}
}

func TestReschedule(t *testing.T) {
	windows := openDay("2026-09-07")
	windows["2026-09-09"] = []models.AvailableWindow{{Start: "13:00", End: "15:00", Label: "13:00 - 15:00"}}
	svc, _ := newTestService(windows)

	appt, err := svc.CreateAppointment(models.CreateAppointmentRequest{
		DoctorID: "d1", PatientName: "Maria", Date: "2026-09-07", Start: "10:00", End: "10:30",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	moved, err := svc.Reschedule(appt.ID, "2026-09-09", "13:00", "13:30")
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if moved.Date != "2026-09-09" || moved.Start != "13:00" || moved.End != "13:30" {
		t.Errorf("moved = %+v", moved)
	}

	if _, err := svc.Reschedule(appt.ID, "2026-09-09", "16:00", "16:30"); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("out-of-window reschedule: err = %v, want ErrSlotUnavailable", err)
	}

	// Cancelled appointments cannot be moved.
	if _, err := svc.UpdateStatus(appt.ID, models.AppointmentCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Reschedule(appt.ID, "2026-09-09", "13:00", "13:30"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reschedule after cancel: err = %v, want ErrInvalidTransition", err)
	}
}
