package models

import "time"

// Doctor is a member of the clinic roster.
//
// WorkingHoursRaw is the working_hours document exactly as persisted (legacy
// or current format); the doctor service migrates it into WorkingHours on
// every read and writes back the current format only.
type Doctor struct {
	ID                string             `bson:"id" json:"id"`
	FullName          string             `bson:"full_name" json:"full_name"`
	Specialty         string             `bson:"specialty" json:"specialty"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone" json:"phone"`
	Bio               string             `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL          string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	PhotoPublicID     string             `bson:"photo_public_id,omitempty" json:"-"` // storage identifier of the current photo
	ConsultationPrice float64            `bson:"consultation_price" json:"consultation_price"`
	SlotDurationMins  int                `bson:"slot_duration_mins" json:"slot_duration_mins"` // appointment granularity for free-slot listing
	Active            bool               `bson:"active" json:"active"`
	WorkingHoursRaw   RawWorkingHours    `bson:"working_hours" json:"-"`
	WorkingHours      WeeklyAvailability `bson:"-" json:"working_hours"`
	DateOverrides     []DateOverride     `bson:"date_specific_availability" json:"date_specific_availability"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateDoctorRequest is the payload for adding a doctor to the roster.
type CreateDoctorRequest struct {
	FullName          string  `json:"full_name" binding:"required"`
	Specialty         string  `json:"specialty" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             string  `json:"phone"`
	Bio               string  `json:"bio"`
	ConsultationPrice float64 `json:"consultation_price"`
	SlotDurationMins  int     `json:"slot_duration_mins"`
}

// UpdateTimeSlotRequest patches one field of a time range.
type UpdateTimeSlotRequest struct {
	Field string `json:"field" binding:"required,oneof=start end"`
	Value string `json:"value" binding:"required"`
}

// AddDateOverrideRequest creates a new date override. Date defaults to today
// and Type to "unavailable" when omitted.
type AddDateOverrideRequest struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

// DateOverridePatch shallow-merges onto an existing override. Nil fields are
// left untouched.
type DateOverridePatch struct {
	Date   *string `json:"date"`
	Type   *string `json:"type"`
	Reason *string `json:"reason"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
}
