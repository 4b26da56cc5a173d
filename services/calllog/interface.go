package calllog

import (
	"context"
	"fmt"

	callLogRepo "medcrm/database/repository/calllog"
	"medcrm/models"

	"github.com/hibiken/asynq"
)

// CallLogService manages voice-agent call records and their transcripts.
type CallLogService interface {
	Ingest(req models.IngestCallLogRequest) (*models.CallLog, error)
	GetCallLogByID(id string) (*models.CallLog, error)
	ListCallLogs(filter models.CallLogFilter) ([]models.CallLog, error)
	DeleteCallLog(id string) error

	// Transcribe runs recognition on the stored recording and attaches the
	// transcript. The asynq worker calls this.
	Transcribe(ctx context.Context, callLogID, recordingURL string) error

	// PurgeExpired removes call logs older than the retention window.
	PurgeExpired() (int64, error)
}

// Transcriber converts a recording into transcript entries.
type Transcriber interface {
	Transcribe(ctx context.Context, recordingURL string) ([]models.TranscriptEntry, error)
}

// DefaultCallLogService is the production implementation.
type DefaultCallLogService struct {
	Repo          callLogRepo.CallLogRepository
	TaskClient    *asynq.Client
	Speech        Transcriber
	RetentionDays int
}

func NewDefaultCallLogService(repo callLogRepo.CallLogRepository, taskClient *asynq.Client, speech Transcriber, retentionDays int) (*DefaultCallLogService, error) {
	if repo == nil {
		return nil, fmt.Errorf("call log service initialization error: repository is nil")
	}
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &DefaultCallLogService{
		Repo:          repo,
		TaskClient:    taskClient,
		Speech:        speech,
		RetentionDays: retentionDays,
	}, nil
}
