package models

import "time"

// Call log statuses.
const (
	CallStatusCompleted  = "completed"
	CallStatusMissed     = "missed"
	CallStatusFailed     = "failed"
	CallStatusInProgress = "in_progress"
)

// Transcription states for a call recording.
const (
	TranscriptionPending = "pending"
	TranscriptionDone    = "done"
	TranscriptionFailed  = "failed"
	TranscriptionSkipped = "skipped" // no recording attached
)

// TranscriptEntry is one utterance in a call transcript.
type TranscriptEntry struct {
	Role       string  `bson:"role" json:"role"` // "agent" or "caller"
	Text       string  `bson:"text" json:"text"`
	OffsetSecs float64 `bson:"offset_secs" json:"offset_secs"`
}

// CallLog is one voice-agent call as reviewed on the dashboard.
type CallLog struct {
	ID                  string            `bson:"id" json:"id"`
	AgentID             string            `bson:"agent_id" json:"agent_id"`
	CallerNumber        string            `bson:"caller_number" json:"caller_number"`
	PatientName         string            `bson:"patient_name,omitempty" json:"patient_name,omitempty"`
	StartedAt           time.Time         `bson:"started_at" json:"started_at"`
	DurationSecs        int               `bson:"duration_secs" json:"duration_secs"`
	Status              string            `bson:"status" json:"status"`
	Outcome             string            `bson:"outcome,omitempty" json:"outcome,omitempty"` // e.g. "appointment_booked"
	AppointmentID       string            `bson:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	RecordingURL        string            `bson:"recording_url,omitempty" json:"recording_url,omitempty"`
	TranscriptionStatus string            `bson:"transcription_status" json:"transcription_status"`
	Transcript          []TranscriptEntry `bson:"transcript,omitempty" json:"transcript,omitempty"`
	Summary             string            `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt           time.Time         `bson:"created_at" json:"created_at"`
}

// IngestCallLogRequest is the payload posted by the telephony webhook when a
// call ends.
type IngestCallLogRequest struct {
	AgentID       string `json:"agent_id" binding:"required"`
	CallerNumber  string `json:"caller_number" binding:"required"`
	PatientName   string `json:"patient_name"`
	StartedAt     string `json:"started_at"` // RFC 3339; defaults to now
	DurationSecs  int    `json:"duration_secs"`
	Status        string `json:"status" binding:"required"` // one of the CallStatus* values, checked on ingest
	Outcome       string `json:"outcome"`
	AppointmentID string `json:"appointment_id"`
	RecordingURL  string `json:"recording_url"`
}

// CallLogFilter narrows a call-log listing.
type CallLogFilter struct {
	AgentID string
	Status  string
	From    time.Time
	To      time.Time
	Limit   int64
}

// TranscriptionPayload is the asynq task payload for transcribing a recording.
type TranscriptionPayload struct {
	CallLogID    string `json:"callLogId"`
	RecordingURL string `json:"recordingUrl"`
}
