package doctor

import (
	"fmt"
	"time"

	"medcrm/models"
	"medcrm/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ParseWeekday maps a lowercase weekday name onto its key.
func ParseWeekday(s string) (models.WeekdayKey, bool) {
	for _, key := range models.WeekdayOrder {
		if string(key) == s {
			return key, true
		}
	}
	return "", false
}

// load fetches a doctor and normalizes its working hours into the current
// format, whatever shape the document was last written in.
func (s *DefaultDoctorService) load(id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	doc.WorkingHours = MigrateWorkingHours(doc.WorkingHoursRaw)
	doc.WorkingHoursRaw = nil
	if doc.DateOverrides == nil {
		doc.DateOverrides = []models.DateOverride{}
	}
	return doc, nil
}

// save persists the doctor, writing working hours back in the current format.
func (s *DefaultDoctorService) save(doc *models.Doctor) error {
	doc.UpdatedAt = time.Now()
	doc.WorkingHoursRaw = doc.WorkingHours.Raw()
	if err := s.Repo.Update(doc); err != nil {
		return err
	}
	doc.WorkingHoursRaw = nil
	return nil
}

func (s *DefaultDoctorService) CreateDoctor(req models.CreateDoctorRequest) (*models.Doctor, error) {
	slotDuration := req.SlotDurationMins
	if slotDuration <= 0 {
		slotDuration = 30
	}
	now := time.Now()
	doc := &models.Doctor{
		ID:                uuid.NewString(),
		FullName:          req.FullName,
		Specialty:         req.Specialty,
		Email:             req.Email,
		Phone:             req.Phone,
		Bio:               req.Bio,
		ConsultationPrice: req.ConsultationPrice,
		SlotDurationMins:  slotDuration,
		Active:            true,
		WorkingHours:      DefaultWeeklyAvailability(),
		DateOverrides:     []models.DateOverride{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	doc.WorkingHoursRaw = doc.WorkingHours.Raw()
	if err := s.Repo.Create(doc); err != nil {
		utils.GetLogger().Error("CreateDoctor: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	doc.WorkingHoursRaw = nil
	return doc, nil
}

func (s *DefaultDoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	return s.load(id)
}

func (s *DefaultDoctorService) ListDoctors(activeOnly bool) ([]models.Doctor, error) {
	docs, err := s.Repo.GetAll(activeOnly)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].WorkingHours = MigrateWorkingHours(docs[i].WorkingHoursRaw)
		docs[i].WorkingHoursRaw = nil
		if docs[i].DateOverrides == nil {
			docs[i].DateOverrides = []models.DateOverride{}
		}
	}
	return docs, nil
}

// allowedDoctorUpdates whitelists the fields PATCH may touch directly.
// Working hours and overrides go through their dedicated operations.
var allowedDoctorUpdates = map[string]bool{
	"full_name":          true,
	"specialty":          true,
	"email":              true,
	"phone":              true,
	"bio":                true,
	"photo_url":          true,
	"photo_public_id":    true,
	"consultation_price": true,
	"slot_duration_mins": true,
	"active":             true,
}

func (s *DefaultDoctorService) UpdateDoctor(id string, updates map[string]interface{}) (*models.Doctor, error) {
	setDoc := bson.M{}
	for field, value := range updates {
		if allowedDoctorUpdates[field] {
			setDoc[field] = value
		}
	}
	if len(setDoc) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	setDoc["updated_at"] = time.Now()
	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": setDoc}); err != nil {
		return nil, err
	}
	return s.load(id)
}

func (s *DefaultDoctorService) DeleteDoctor(id string) error {
	return s.Repo.Delete(id)
}

// mutateAvailability loads the doctor, applies the transform to its weekly
// availability and overrides, and saves the result.
func (s *DefaultDoctorService) mutateAvailability(doctorID string, apply func(*models.Doctor)) (*models.Doctor, error) {
	doc, err := s.load(doctorID)
	if err != nil {
		return nil, err
	}
	apply(doc)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultDoctorService) SetDayEnabled(doctorID string, day models.WeekdayKey, enabled bool) (*models.Doctor, error) {
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.WorkingHours = ToggleDay(doc.WorkingHours, day, enabled)
	})
}

func (s *DefaultDoctorService) AddSlot(doctorID string, day models.WeekdayKey) (*models.Doctor, error) {
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.WorkingHours = AddTimeSlot(doc.WorkingHours, day)
	})
}

func (s *DefaultDoctorService) UpdateSlot(doctorID string, day models.WeekdayKey, slotID, field, value string) (*models.Doctor, error) {
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.WorkingHours = UpdateTimeSlot(doc.WorkingHours, day, slotID, field, value)
	})
}

func (s *DefaultDoctorService) RemoveSlot(doctorID string, day models.WeekdayKey, slotID string) (*models.Doctor, error) {
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.WorkingHours = RemoveTimeSlot(doc.WorkingHours, day, slotID)
	})
}

func (s *DefaultDoctorService) AddOverride(doctorID string, req models.AddDateOverrideRequest) (*models.Doctor, error) {
	if req.Type != "" && req.Type != models.OverrideUnavailable && req.Type != models.OverrideModifiedHours {
		return nil, fmt.Errorf("invalid override type %q", req.Type)
	}
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.DateOverrides = AddDateOverride(doc.DateOverrides, req.Date, req.Type)
	})
}

func (s *DefaultDoctorService) UpdateOverride(doctorID, overrideID string, patch models.DateOverridePatch) (*models.Doctor, error) {
	if patch.Type != nil && *patch.Type != models.OverrideUnavailable && *patch.Type != models.OverrideModifiedHours {
		return nil, fmt.Errorf("invalid override type %q", *patch.Type)
	}
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.DateOverrides = UpdateDateOverride(doc.DateOverrides, overrideID, patch)
	})
}

func (s *DefaultDoctorService) RemoveOverride(doctorID, overrideID string) (*models.Doctor, error) {
	return s.mutateAvailability(doctorID, func(doc *models.Doctor) {
		doc.DateOverrides = RemoveDateOverride(doc.DateOverrides, overrideID)
	})
}
