package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment is a booked visit with a doctor.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	DoctorID     string    `bson:"doctor_id" json:"doctor_id"`
	PatientName  string    `bson:"patient_name" json:"patient_name"`
	PatientPhone string    `bson:"patient_phone" json:"patient_phone"`
	Date         string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start        string    `bson:"start" json:"start"` // "HH:MM"
	End          string    `bson:"end" json:"end"`
	Reason       string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status       string    `bson:"status" json:"status"`
	Source       string    `bson:"source" json:"source"` // "dashboard" or "voice_agent"
	CallLogID    string    `bson:"call_log_id,omitempty" json:"call_log_id,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateAppointmentRequest books a new appointment.
type CreateAppointmentRequest struct {
	DoctorID     string `json:"doctor_id" binding:"required"`
	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone"`
	Date         string `json:"date" binding:"required"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	Reason       string `json:"reason"`
	Source       string `json:"source"`
	CallLogID    string `json:"call_log_id"`
}

// AppointmentFilter narrows an appointment listing.
type AppointmentFilter struct {
	DoctorID string
	Date     string
	Status   string
	Limit    int64
}
