package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medcrm/config"
	"medcrm/models"
	"medcrm/services/calllog"

	"github.com/hibiken/asynq"
)

// InitTranscriptionWorker runs the async worker in background.
func InitTranscriptionWorker(callLogSvc calllog.CallLogService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(calllog.TypeTranscribeRecording, handleTranscriptionTask(callLogSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[TranscriptionWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TranscriptionWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TranscriptionWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleTranscriptionTask(callLogSvc calllog.CallLogService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TranscriptionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TranscriptionHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[TranscriptionHandler] Transcribing recording for call log %s", p.CallLogID)
		if err := callLogSvc.Transcribe(ctx, p.CallLogID, p.RecordingURL); err != nil {
			log.Printf("[TranscriptionHandler] Failed to transcribe call log %s: %v", p.CallLogID, err)
			return err
		}
		return nil
	}
}

// StartRetentionSweeper purges call logs past the retention window once a day.
func StartRetentionSweeper(callLogSvc calllog.CallLogService) {
	go func() {
		// Run once shortly after boot, then daily.
		time.Sleep(time.Minute)
		for {
			if removed, err := callLogSvc.PurgeExpired(); err != nil {
				log.Printf("[RetentionSweeper] Purge failed: %v", err)
			} else if removed > 0 {
				log.Printf("[RetentionSweeper] Removed %d expired call logs", removed)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}

// NewTaskClient creates the asynq client used to enqueue background tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}
