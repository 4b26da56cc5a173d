package doctor

import (
	"testing"

	"medcrm/models"
)

// seedDoctor inserts a doctor with the default schedule and returns the
// service wired to in-memory repos.
func seedDoctor(t *testing.T) (*DefaultDoctorService, *mockAppointmentRepo, string) {
	t.Helper()
	repo := newMockDoctorRepo()
	appts := &mockAppointmentRepo{}
	svc := &DefaultDoctorService{Repo: repo, Appointments: appts}

	doc, err := svc.CreateDoctor(models.CreateDoctorRequest{
		FullName:  "Dr. Chen",
		Specialty: "Dermatology",
		Email:     "chen@clinic.test",
	})
	if err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	return svc, appts, doc.ID
}

func TestFreeSlotsFullOpenDay(t *testing.T) {
	svc, _, id := seedDoctor(t)

	// 2026-09-07 is a Monday.
	windows, err := svc.FreeSlots(id, "2026-09-07")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if windows[0].Start != "09:00" || windows[0].End != "17:00" {
		t.Errorf("window = %s-%s, want 09:00-17:00", windows[0].Start, windows[0].End)
	}
	if windows[0].Label != "09:00 - 17:00" {
		t.Errorf("label = %q", windows[0].Label)
	}
}

func TestFreeSlotsDisabledDay(t *testing.T) {
	svc, _, id := seedDoctor(t)

	// 2026-09-06 is a Sunday: disabled by default.
	windows, err := svc.FreeSlots(id, "2026-09-06")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(windows) != 0 {
		t.Errorf("expected no windows on a disabled day, got %d", len(windows))
	}
}

func TestFreeSlotsSubtractsAppointments(t *testing.T) {
	svc, appts, id := seedDoctor(t)

	appts.appointments = append(appts.appointments,
		models.Appointment{ID: "a1", DoctorID: id, Date: "2026-09-07", Start: "10:00", End: "10:30", Status: models.AppointmentScheduled},
		models.Appointment{ID: "a2", DoctorID: id, Date: "2026-09-07", Start: "14:00", End: "15:00", Status: models.AppointmentConfirmed},
		// Cancelled visits release their slot.
		models.Appointment{ID: "a3", DoctorID: id, Date: "2026-09-07", Start: "11:00", End: "12:00", Status: models.AppointmentCancelled},
	)

	windows, err := svc.FreeSlots(id, "2026-09-07")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	want := []models.AvailableWindow{
		{Start: "09:00", End: "10:00", Label: "09:00 - 10:00"},
		{Start: "10:30", End: "14:00", Label: "10:30 - 14:00"},
		{Start: "15:00", End: "17:00", Label: "15:00 - 17:00"},
	}
	if len(windows) != len(want) {
		t.Fatalf("got %d windows, want %d: %+v", len(windows), len(want), windows)
	}
	for i := range want {
		if windows[i] != want[i] {
			t.Errorf("window[%d] = %+v, want %+v", i, windows[i], want[i])
		}
	}
}

func TestFreeSlotsUnavailableOverrideBlocksDay(t *testing.T) {
	svc, _, id := seedDoctor(t)

	if _, err := svc.AddOverride(id, models.AddDateOverrideRequest{Date: "2026-09-07", Type: models.OverrideUnavailable}); err != nil {
		t.Fatalf("AddOverride: %v", err)
	}

	windows, err := svc.FreeSlots(id, "2026-09-07")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(windows) != 0 {
		t.Errorf("unavailable override should block the whole day, got %+v", windows)
	}

	// Other dates are unaffected.
	windows, err = svc.FreeSlots(id, "2026-09-08")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(windows) != 1 {
		t.Errorf("other dates should keep their weekly schedule")
	}
}

func TestFreeSlotsModifiedHoursOverrideReplacesWeekly(t *testing.T) {
	svc, _, id := seedDoctor(t)

	doc, err := svc.AddOverride(id, models.AddDateOverrideRequest{Date: "2026-09-07", Type: models.OverrideModifiedHours})
	if err != nil {
		t.Fatalf("AddOverride: %v", err)
	}
	start, end := "12:00", "15:00"
	if _, err := svc.UpdateOverride(id, doc.DateOverrides[0].ID, models.DateOverridePatch{Start: &start, End: &end}); err != nil {
		t.Fatalf("UpdateOverride: %v", err)
	}

	windows, err := svc.FreeSlots(id, "2026-09-07")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(windows) != 1 || windows[0].Start != "12:00" || windows[0].End != "15:00" {
		t.Errorf("modified hours should replace the weekly range, got %+v", windows)
	}
}

func TestAvailabilityEditsPersistAcrossLoads(t *testing.T) {
	svc, _, id := seedDoctor(t)

	if _, err := svc.SetDayEnabled(id, models.Saturday, true); err != nil {
		t.Fatalf("SetDayEnabled: %v", err)
	}
	doc, err := svc.GetDoctorByID(id)
	if err != nil {
		t.Fatalf("GetDoctorByID: %v", err)
	}
	sat := doc.WorkingHours.Day(models.Saturday)
	if !sat.Enabled || len(sat.TimeSlots) != 1 {
		t.Fatalf("saturday after toggle: enabled=%v slots=%d", sat.Enabled, len(sat.TimeSlots))
	}

	// Edits survive the save/load round trip with ids intact.
	slotID := sat.TimeSlots[0].ID
	if _, err := svc.UpdateSlot(id, models.Saturday, slotID, "end", "13:00"); err != nil {
		t.Fatalf("UpdateSlot: %v", err)
	}
	doc, _ = svc.GetDoctorByID(id)
	sat = doc.WorkingHours.Day(models.Saturday)
	if sat.TimeSlots[0].ID != slotID || sat.TimeSlots[0].End != "13:00" {
		t.Errorf("slot after reload = %+v", sat.TimeSlots[0])
	}
}

func TestLegacyDocumentMigratesOnRead(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := &DefaultDoctorService{Repo: repo, Appointments: &mockAppointmentRepo{}}

	repo.doctors["legacy-1"] = models.Doctor{
		ID:       "legacy-1",
		FullName: "Dr. Osei",
		Active:   true,
		WorkingHoursRaw: models.RawWorkingHours{
			"monday": {Enabled: true, Start: "08:00", End: "12:00"},
		},
	}

	doc, err := svc.GetDoctorByID("legacy-1")
	if err != nil {
		t.Fatalf("GetDoctorByID: %v", err)
	}
	mon := doc.WorkingHours.Day(models.Monday)
	if len(mon.TimeSlots) != 1 || mon.TimeSlots[0].Start != "08:00" || mon.TimeSlots[0].End != "12:00" {
		t.Fatalf("legacy monday not migrated: %+v", mon)
	}
	if doc.DateOverrides == nil {
		t.Error("overrides must come back as an empty list, not nil")
	}

	// 2026-09-07 is a Monday: free slots follow the migrated range.
	windows, err := svc.FreeSlots("legacy-1", "2026-09-07")
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(windows) != 1 || windows[0].Start != "08:00" || windows[0].End != "12:00" {
		t.Errorf("windows = %+v, want single 08:00-12:00", windows)
	}
}
