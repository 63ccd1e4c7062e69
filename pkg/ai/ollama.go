package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/johnquangdev/lecture-quiz/pkg/config"
)

const defaultOllamaURL = "http://localhost:11434"

// OllamaClient is a minimal client for the Ollama generate API
type OllamaClient struct {
	baseURL string
	client  *http.Client
}

// NewOllamaClient creates an Ollama client using values from the provided config.
// Callers bound each request through the context, so the http.Client has no timeout of its own.
func NewOllamaClient(cfg *config.LLMConfig) *OllamaClient {
	base := defaultOllamaURL
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	}

	return &OllamaClient{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{},
	}
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options GenerateOptions `json:"options"`
}

// GenerateOptions holds sampling parameters
type GenerateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// GenerateResponse is one generate response object. Streaming responses are a
// sequence of these, each carrying a piece of the text.
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Complete sends the prompt to Ollama and returns the generated text
func (o *OllamaClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	reqBody := GenerateRequest{
		Model:  opts.Model,
		Prompt: prompt,
		Stream: opts.Stream,
		Options: GenerateOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := o.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{Service: "ollama", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	// Non-streaming responses are a single object, so the same loop covers both modes.
	var sb strings.Builder
	dec := json.NewDecoder(resp.Body)
	for {
		var gr GenerateResponse
		if err := dec.Decode(&gr); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("failed to decode ollama response: %w", err)
		}
		sb.WriteString(gr.Response)
		if gr.Done || !opts.Stream {
			break
		}
	}
	return sb.String(), nil
}
