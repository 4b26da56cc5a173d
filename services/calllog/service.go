// File: services/calllog/service.go
package calllog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medcrm/models"
	"medcrm/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidCallStatus is returned when the webhook posts a status outside
// the CallStatus* set.
var ErrInvalidCallStatus = errors.New("unknown call status")

var validCallStatuses = map[string]bool{
	models.CallStatusCompleted:  true,
	models.CallStatusMissed:     true,
	models.CallStatusFailed:     true,
	models.CallStatusInProgress: true,
}

// Ingest stores a finished call and, when a recording is attached, queues it
// for transcription.
func (s *DefaultCallLogService) Ingest(req models.IngestCallLogRequest) (*models.CallLog, error) {
	logger := utils.GetLogger()

	if !validCallStatuses[req.Status] {
		return nil, fmt.Errorf("%w %q", ErrInvalidCallStatus, req.Status)
	}

	startedAt := time.Now()
	if req.StartedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid started_at %q: %w", req.StartedAt, err)
		}
		startedAt = parsed
	}

	transcription := models.TranscriptionSkipped
	if req.RecordingURL != "" {
		transcription = models.TranscriptionPending
	}

	log := &models.CallLog{
		ID:                  uuid.NewString(),
		AgentID:             req.AgentID,
		CallerNumber:        req.CallerNumber,
		PatientName:         req.PatientName,
		StartedAt:           startedAt,
		DurationSecs:        req.DurationSecs,
		Status:              req.Status,
		Outcome:             req.Outcome,
		AppointmentID:       req.AppointmentID,
		RecordingURL:        req.RecordingURL,
		TranscriptionStatus: transcription,
		CreatedAt:           time.Now(),
	}
	if err := s.Repo.Create(log); err != nil {
		logger.Error("Ingest: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to store call log: %w", err)
	}

	if transcription == models.TranscriptionPending && s.TaskClient != nil {
		task, err := NewTranscriptionTask(log.ID, log.RecordingURL)
		if err == nil {
			_, err = s.TaskClient.Enqueue(task)
		}
		if err != nil {
			// The call record stands on its own; transcription is best effort.
			logger.Error("Ingest: failed to enqueue transcription", zap.String("callLogID", log.ID), zap.Error(err))
			log.TranscriptionStatus = models.TranscriptionFailed
			if uerr := s.Repo.Update(log); uerr != nil {
				logger.Error("Ingest: failed to mark transcription failed", zap.Error(uerr))
			}
		}
	}

	logger.Info("Call log ingested",
		zap.String("callLogID", log.ID),
		zap.String("agentID", log.AgentID),
		zap.String("status", log.Status),
	)
	return log, nil
}

func (s *DefaultCallLogService) GetCallLogByID(id string) (*models.CallLog, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCallLogService) ListCallLogs(filter models.CallLogFilter) ([]models.CallLog, error) {
	return s.Repo.List(filter)
}

func (s *DefaultCallLogService) DeleteCallLog(id string) error {
	return s.Repo.Delete(id)
}

// Transcribe fetches and recognizes the recording, then attaches the result.
func (s *DefaultCallLogService) Transcribe(ctx context.Context, callLogID, recordingURL string) error {
	logger := utils.GetLogger()

	log, err := s.Repo.GetByID(callLogID)
	if err != nil {
		return fmt.Errorf("transcription target not found: %w", err)
	}
	if log.TranscriptionStatus == models.TranscriptionDone {
		return nil
	}
	if s.Speech == nil {
		log.TranscriptionStatus = models.TranscriptionSkipped
		return s.Repo.Update(log)
	}

	entries, err := s.Speech.Transcribe(ctx, recordingURL)
	if err != nil {
		logger.Error("Transcribe: recognition failed", zap.String("callLogID", callLogID), zap.Error(err))
		log.TranscriptionStatus = models.TranscriptionFailed
		if uerr := s.Repo.Update(log); uerr != nil {
			return uerr
		}
		// Return the original error so asynq retries the task.
		return err
	}

	log.Transcript = entries
	log.TranscriptionStatus = models.TranscriptionDone
	if err := s.Repo.Update(log); err != nil {
		return fmt.Errorf("failed to store transcript: %w", err)
	}

	logger.Info("Call transcribed", zap.String("callLogID", callLogID), zap.Int("entries", len(entries)))
	return nil
}

// PurgeExpired enforces the retention window on stored calls.
func (s *DefaultCallLogService) PurgeExpired() (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.RetentionDays)
	removed, err := s.Repo.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired call logs: %w", err)
	}
	if removed > 0 {
		utils.GetLogger().Info("Purged expired call logs",
			zap.Int64("removed", removed), zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
