package ai

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lecture-quiz/pkg/config"
)

// AssemblyAIClient transcribes local files through the AssemblyAI SDK
type AssemblyAIClient struct {
	client       *aai.Client
	languageCode string
	logger       *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If the key is empty, falls back to ASSEMBLYAI_API_KEY.
func NewAssemblyAIClient(cfg *config.TranscriptionConfig, logger *zap.Logger, opts ...aai.ClientOption) *AssemblyAIClient {
	var apiKey, lang string
	if cfg != nil {
		apiKey = cfg.AssemblyAIKey
		lang = cfg.LanguageCode
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts = append([]aai.ClientOption{aai.WithAPIKey(apiKey)}, opts...)
	return &AssemblyAIClient{
		client:       aai.NewClientWithOptions(opts...),
		languageCode: lang,
		logger:       logger,
	}
}

// Transcribe uploads the file, waits for the transcript and returns its sentences as segments
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioPath string) (Transcription, error) {
	var uploadURL string
	uploadFn := func() error {
		f, err := os.Open(audioPath)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to open audio: %w", err))
		}
		defer f.Close()

		c.logger.Info("📤 Uploading file to AssemblyAI", zap.String("path", audioPath))

		u, err := c.client.Upload(ctx, f)
		if err != nil {
			return fmt.Errorf("failed to upload to AssemblyAI: %w", err)
		}
		uploadURL = u
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		c.logger.Error("❌ Failed to upload to AssemblyAI after retries", zap.Error(err))
		return Transcription{}, err
	}

	params := &aai.TranscriptOptionalParams{}
	if c.languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.languageCode)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}

	c.logger.Info("🎙️ Starting transcription", zap.String("language", c.languageCode))

	// TranscribeFromURL polls until the transcript reaches a terminal status
	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return Transcription{}, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return Transcription{}, fmt.Errorf("assemblyai transcription failed: %s", msg)
	}

	var transcriptID string
	if transcript.ID != nil {
		transcriptID = *transcript.ID
	}

	out := Transcription{Language: string(transcript.LanguageCode)}
	if transcript.Text != nil {
		out.Text = *transcript.Text
	}
	if transcript.AudioDuration != nil {
		out.Duration = float64(*transcript.AudioDuration)
	}

	sentences, err := c.client.Transcripts.GetSentences(ctx, transcriptID)
	if err != nil {
		return Transcription{}, fmt.Errorf("failed to fetch sentences: %w", err)
	}

	out.Segments = make([]Segment, 0, len(sentences.Sentences))
	for _, s := range sentences.Sentences {
		seg := Segment{}
		if s.Start != nil {
			seg.Start = float64(*s.Start) / 1000
		}
		if s.End != nil {
			seg.End = float64(*s.End) / 1000
		}
		if s.Text != nil {
			seg.Text = strings.TrimSpace(*s.Text)
		}
		out.Segments = append(out.Segments, seg)
	}

	c.logger.Info("✅ Received transcript from AssemblyAI",
		zap.String("transcript_id", transcriptID),
		zap.Int("segments", len(out.Segments)),
	)
	return out, nil
}
