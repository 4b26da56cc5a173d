package doctor

import (
	"fmt"

	"medcrm/models"

	"go.mongodb.org/mongo-driver/bson"
)

// mockDoctorRepo is an in-memory DoctorRepository for service tests.
type mockDoctorRepo struct {
	doctors map[string]models.Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[string]models.Doctor)}
}

func (m *mockDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, fmt.Errorf("doctor with id %s not found", id)
	}
	dup := d
	return &dup, nil
}

func (m *mockDoctorRepo) GetAll(activeOnly bool) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range m.doctors {
		if activeOnly && !d.Active {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDoctorRepo) Create(d *models.Doctor) error {
	m.doctors[d.ID] = *d
	return nil
}

func (m *mockDoctorRepo) Update(d *models.Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return fmt.Errorf("doctor with id %s not found", d.ID)
	}
	m.doctors[d.ID] = *d
	return nil
}

func (m *mockDoctorRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	d, ok := m.doctors[id]
	if !ok {
		return fmt.Errorf("doctor with id %s not found", id)
	}
	if set, ok := updateDoc["$set"].(bson.M); ok {
		if v, ok := set["photo_url"].(string); ok {
			d.PhotoURL = v
		}
		if v, ok := set["full_name"].(string); ok {
			d.FullName = v
		}
		if v, ok := set["active"].(bool); ok {
			d.Active = v
		}
	}
	m.doctors[id] = d
	return nil
}

func (m *mockDoctorRepo) Delete(id string) error {
	if _, ok := m.doctors[id]; !ok {
		return fmt.Errorf("doctor with id %s not found", id)
	}
	delete(m.doctors, id)
	return nil
}

// mockAppointmentRepo is an in-memory AppointmentRepository.
type mockAppointmentRepo struct {
	appointments []models.Appointment
}

func (m *mockAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for _, a := range m.appointments {
		if a.ID == id {
			dup := a
			return &dup, nil
		}
	}
	return nil, fmt.Errorf("appointment with id %s not found", id)
}

func (m *mockAppointmentRepo) List(filter models.AppointmentFilter) ([]models.Appointment, error) {
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

func (m *mockAppointmentRepo) ListByDoctorDate(doctorID, date string) ([]models.Appointment, error) {
	return m.List(models.AppointmentFilter{DoctorID: doctorID, Date: date})
}

func (m *mockAppointmentRepo) Create(a *models.Appointment) error {
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *mockAppointmentRepo) Update(a *models.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == a.ID {
			m.appointments[i] = *a
			return nil
		}
	}
	return fmt.Errorf("appointment with id %s not found", a.ID)
}

func (m *mockAppointmentRepo) Delete(id string) error {
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("appointment with id %s not found", id)
}
