package calllog

import (
	"encoding/json"
	"fmt"

	"medcrm/models"

	"github.com/hibiken/asynq"
)

// TypeTranscribeRecording is the asynq task type for transcribing a call
// recording in the background.
const TypeTranscribeRecording = "calllog:transcribe"

// NewTranscriptionTask builds the asynq task for one recording.
func NewTranscriptionTask(callLogID, recordingURL string) (*asynq.Task, error) {
	payload, err := json.Marshal(models.TranscriptionPayload{
		CallLogID:    callLogID,
		RecordingURL: recordingURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcription payload: %w", err)
	}
	return asynq.NewTask(TypeTranscribeRecording, payload, asynq.MaxRetry(3)), nil
}
