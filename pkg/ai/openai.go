package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/lecture-quiz/pkg/config"
)

// OpenAIClient serves completions through any OpenAI-compatible chat endpoint
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a chat completion client. BaseURL may point at a
// self-hosted OpenAI-compatible server.
func NewOpenAIClient(cfg *config.LLMConfig) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(clientConfig)}
}

// Complete sends the prompt as a single user message and returns the reply text
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: float32(opts.Temperature),
		TopP:        float32(opts.TopP),
	}

	if opts.Stream {
		return c.completeStream(ctx, req)
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) completeStream(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	req.Stream = true
	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return "", wrapOpenAIError(err)
	}
	defer stream.Close()

	var sb strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", wrapOpenAIError(err)
		}
		for _, choice := range resp.Choices {
			sb.WriteString(choice.Delta.Content)
		}
	}
	return sb.String(), nil
}

// OpenAITranscriber transcribes files with the Whisper transcription endpoint
type OpenAITranscriber struct {
	client       *openai.Client
	model        string
	languageCode string
}

// NewOpenAITranscriber creates a transcriber from the transcription config
func NewOpenAITranscriber(cfg *config.TranscriptionConfig) *OpenAITranscriber {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	model := cfg.OpenAIModel
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAITranscriber{
		client:       openai.NewClientWithConfig(clientConfig),
		model:        model,
		languageCode: cfg.LanguageCode,
	}
}

// Transcribe uploads the file and maps the verbose_json segments
func (t *OpenAITranscriber) Transcribe(ctx context.Context, audioPath string) (Transcription, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: t.languageCode,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Transcription{}, wrapOpenAIError(err)
	}

	out := Transcription{
		Text:     strings.TrimSpace(resp.Text),
		Language: resp.Language,
		Duration: resp.Duration,
		Segments: make([]Segment, 0, len(resp.Segments)),
	}
	for _, s := range resp.Segments {
		out.Segments = append(out.Segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}
	return out, nil
}

// wrapOpenAIError turns HTTP failures into StatusError so callers can treat every backend alike
func wrapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &StatusError{Service: "openai", StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &StatusError{Service: "openai", StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}
	return err
}
