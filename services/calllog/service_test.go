package calllog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"medcrm/models"
)

// mockCallLogRepo is an in-memory CallLogRepository.
type mockCallLogRepo struct {
	logs         map[string]models.CallLog
	purgedBefore time.Time
}

func newMockCallLogRepo() *mockCallLogRepo {
	return &mockCallLogRepo{logs: make(map[string]models.CallLog)}
}

func (m *mockCallLogRepo) GetByID(id string) (*models.CallLog, error) {
	l, ok := m.logs[id]
	if !ok {
		return nil, fmt.Errorf("call log with id %s not found", id)
	}
	dup := l
	return &dup, nil
}

func (m *mockCallLogRepo) List(filter models.CallLogFilter) ([]models.CallLog, error) {
	var out []models.CallLog
	for _, l := range m.logs {
		if filter.AgentID != "" && l.AgentID != filter.AgentID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *mockCallLogRepo) Create(log *models.CallLog) error {
	m.logs[log.ID] = *log
	return nil
}

func (m *mockCallLogRepo) Update(log *models.CallLog) error {
	if _, ok := m.logs[log.ID]; !ok {
		return fmt.Errorf("call log with id %s not found", log.ID)
	}
	m.logs[log.ID] = *log
	return nil
}

func (m *mockCallLogRepo) Delete(id string) error {
	delete(m.logs, id)
	return nil
}

func (m *mockCallLogRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	m.purgedBefore = cutoff
	var removed int64
	for id, l := range m.logs {
		if l.StartedAt.Before(cutoff) {
			delete(m.logs, id)
			removed++
		}
	}
	return removed, nil
}

// stubTranscriber returns a canned transcript or a canned error.
type stubTranscriber struct {
	entries []models.TranscriptEntry
	err     error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, recordingURL string) ([]models.TranscriptEntry, error) {
	return s.entries, s.err
}

func TestIngestRejectsUnknownStatus(t *testing.T) {
	svc, _ := NewDefaultCallLogService(newMockCallLogRepo(), nil, nil, 0)

	_, err := svc.Ingest(models.IngestCallLogRequest{
		AgentID:      "ag-1",
		CallerNumber: "+15550100",
		Status:       "dropped",
	})
	if !errors.Is(err, ErrInvalidCallStatus) {
		t.Errorf("err = %v, want ErrInvalidCallStatus", err)
	}
}

func TestIngestAcceptsEveryKnownStatus(t *testing.T) {
	svc, _ := NewDefaultCallLogService(newMockCallLogRepo(), nil, nil, 0)

	for _, status := range []string{
		models.CallStatusCompleted,
		models.CallStatusMissed,
		models.CallStatusFailed,
		models.CallStatusInProgress,
	} {
		log, err := svc.Ingest(models.IngestCallLogRequest{
			AgentID:      "ag-1",
			CallerNumber: "+15550100",
			Status:       status,
		})
		if err != nil {
			t.Errorf("status %q rejected: %v", status, err)
			continue
		}
		if log.Status != status {
			t.Errorf("stored status = %q, want %q", log.Status, status)
		}
	}
}

func TestIngestTranscriptionStateFollowsRecording(t *testing.T) {
	svc, _ := NewDefaultCallLogService(newMockCallLogRepo(), nil, nil, 0)

	withRecording, err := svc.Ingest(models.IngestCallLogRequest{
		AgentID:      "ag-1",
		CallerNumber: "+15550100",
		Status:       models.CallStatusCompleted,
		RecordingURL: "https://recordings.test/a.wav",
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if withRecording.TranscriptionStatus != models.TranscriptionPending {
		t.Errorf("with recording: transcription = %q, want pending", withRecording.TranscriptionStatus)
	}

	withoutRecording, err := svc.Ingest(models.IngestCallLogRequest{
		AgentID:      "ag-1",
		CallerNumber: "+15550100",
		Status:       models.CallStatusMissed,
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if withoutRecording.TranscriptionStatus != models.TranscriptionSkipped {
		t.Errorf("without recording: transcription = %q, want skipped", withoutRecording.TranscriptionStatus)
	}
}

func TestTranscribeStoresTranscript(t *testing.T) {
	repo := newMockCallLogRepo()
	speech := &stubTranscriber{entries: []models.TranscriptEntry{
		{Role: "caller", Text: "I'd like to book an appointment", OffsetSecs: 1.5},
	}}
	svc, _ := NewDefaultCallLogService(repo, nil, speech, 0)

	repo.logs["cl-1"] = models.CallLog{
		ID:                  "cl-1",
		AgentID:             "ag-1",
		Status:              models.CallStatusCompleted,
		TranscriptionStatus: models.TranscriptionPending,
	}

	if err := svc.Transcribe(context.Background(), "cl-1", "https://recordings.test/a.wav"); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	stored := repo.logs["cl-1"]
	if stored.TranscriptionStatus != models.TranscriptionDone {
		t.Errorf("transcription = %q, want done", stored.TranscriptionStatus)
	}
	if len(stored.Transcript) != 1 || stored.Transcript[0].Text != "I'd like to book an appointment" {
		t.Errorf("transcript = %+v", stored.Transcript)
	}
}

func TestTranscribeFailureMarksFailedAndReturnsError(t *testing.T) {
	repo := newMockCallLogRepo()
	recognitionErr := errors.New("recognition unavailable")
	svc, _ := NewDefaultCallLogService(repo, nil, &stubTranscriber{err: recognitionErr}, 0)

	repo.logs["cl-1"] = models.CallLog{
		ID:                  "cl-1",
		TranscriptionStatus: models.TranscriptionPending,
	}

	err := svc.Transcribe(context.Background(), "cl-1", "https://recordings.test/a.wav")
	if !errors.Is(err, recognitionErr) {
		t.Errorf("err = %v, want the recognition error so the task retries", err)
	}
	if got := repo.logs["cl-1"].TranscriptionStatus; got != models.TranscriptionFailed {
		t.Errorf("transcription = %q, want failed", got)
	}
}

func TestPurgeExpiredUsesRetentionWindow(t *testing.T) {
	repo := newMockCallLogRepo()
	svc, _ := NewDefaultCallLogService(repo, nil, nil, 30)

	repo.logs["old"] = models.CallLog{ID: "old", StartedAt: time.Now().AddDate(0, 0, -45)}
	repo.logs["recent"] = models.CallLog{ID: "recent", StartedAt: time.Now().AddDate(0, 0, -5)}

	removed, err := svc.PurgeExpired()
	if err != nil {
		t.Fatalf("PurgeExpired: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := repo.logs["recent"]; !ok {
		t.Error("recent call must survive the sweep")
	}
	wantCutoff := time.Now().AddDate(0, 0, -30)
	if diff := repo.purgedBefore.Sub(wantCutoff); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff = %v, want about %v", repo.purgedBefore, wantCutoff)
	}
}
