package ai

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnquangdev/lecture-quiz/pkg/config"
)

func TestNewAssemblyAIClient_EnvFallback(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "env-key")

	client := NewAssemblyAIClient(&config.TranscriptionConfig{LanguageCode: "en"}, nil)
	if client.client == nil {
		t.Fatalf("expected sdk client")
	}
	if client.languageCode != "en" {
		t.Fatalf("unexpected language %q", client.languageCode)
	}
	if client.logger == nil {
		t.Fatalf("expected nop logger")
	}
}

func TestAssemblyAITranscribe_MissingFile(t *testing.T) {
	client := NewAssemblyAIClient(&config.TranscriptionConfig{AssemblyAIKey: "test-key"}, nil)

	missing := filepath.Join(t.TempDir(), "missing.mp3")
	_, err := client.Transcribe(context.Background(), missing)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	// the open failure is permanent, so no upload retries are attempted
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
