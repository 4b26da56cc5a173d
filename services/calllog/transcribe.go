// File: services/calllog/transcribe.go
package calllog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"medcrm/config"
	"medcrm/models"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// maxRecordingBytes caps how much audio a single transcription pulls in.
const maxRecordingBytes = 25 * 1024 * 1024

// SpeechTranscriber recognizes call recordings through Google Cloud
// Speech-to-Text. Recordings are mono LINEAR16 WAV at 8 kHz, the telephony
// standard.
type SpeechTranscriber struct {
	httpClient *http.Client
}

func NewSpeechTranscriber() *SpeechTranscriber {
	return &SpeechTranscriber{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (t *SpeechTranscriber) fetchRecording(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid recording URL: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recording: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recording fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordingBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	return data, nil
}

func (t *SpeechTranscriber) Transcribe(ctx context.Context, recordingURL string) ([]models.TranscriptEntry, error) {
	audioData, err := t.fetchRecording(ctx, recordingURL)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if config.AppConfig.GoogleServiceAccountFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	language := config.AppConfig.SpeechLanguageCode
	if language == "" {
		language = "en-US"
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:            8000,
			LanguageCode:               language,
			AudioChannelCount:          1,
			EnableWordTimeOffsets:      true,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech recognition failed: %w", err)
	}

	var entries []models.TranscriptEntry
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		alt := result.Alternatives[0]
		offset := 0.0
		if len(alt.Words) > 0 && alt.Words[0].StartTime != nil {
			offset = alt.Words[0].StartTime.AsDuration().Seconds()
		}
		entries = append(entries, models.TranscriptEntry{
			// Single-channel telephony audio carries no speaker tags; the
			// dashboard renders untagged entries as "caller".
			Role:       "caller",
			Text:       alt.Transcript,
			OffsetSecs: offset,
		})
	}
	return entries, nil
}
