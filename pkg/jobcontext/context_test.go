package jobcontext

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestJobBegin_Metadata(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "job-1", "transcribe", Options{Timeout: time.Minute, MaxAttempts: 2})
	defer cancel()

	meta := GetJobMetadata(ctx)
	if meta.JobID != "job-1" || meta.Stage != "transcribe" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta.MaxAttempts != 2 || meta.RetryAttempt != 0 {
		t.Fatalf("unexpected attempt metadata %+v", meta)
	}
	if _, ok := ctx.Deadline(); !ok {
		t.Fatalf("expected deadline")
	}
}

func TestJobBegin_NoTimeout(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "job-1", "generate", Options{})
	defer cancel()

	if _, ok := ctx.Deadline(); ok {
		t.Fatalf("expected no deadline")
	}
	if GetMaxAttempts(ctx) != defaultMaxAttempts {
		t.Fatalf("expected default attempts, got %d", GetMaxAttempts(ctx))
	}
}

func TestJobEnd_RetriesRetryableErrors(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "job-1", "transcribe", Options{MaxAttempts: 3, RetryDelay: time.Millisecond})
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		if GetRetryAttempt(ctx) != calls-1 {
			t.Fatalf("attempt %d not visible in context", calls-1)
		}
		if calls < 3 {
			return fmt.Errorf("upload: connection reset by peer")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestJobEnd_StopsOnNonRetryable(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "job-1", "transcribe", Options{MaxAttempts: 5, RetryDelay: time.Millisecond})
	defer cancel()

	calls := 0
	sentinel := errors.New("unsupported media")
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestJobEnd_ExhaustsAttempts(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "job-1", "transcribe", Options{MaxAttempts: 2, RetryDelay: time.Millisecond})
	defer cancel()

	err := JobEnd(ctx, func(ctx context.Context) error {
		return fmt.Errorf("assemblyai returned status 503")
	})
	if err == nil || !strings.Contains(err.Error(), "max attempts (2) exceeded") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestJobEnd_RecoversPanic(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "job-1", "generate", Options{MaxAttempts: 1})
	defer cancel()

	err := JobEnd(ctx, func(ctx context.Context) error {
		panic("boom")
	})
	if err == nil || !strings.Contains(err.Error(), "panic recovered: boom") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("openai returned status 429: slow down"), true},
		{errors.New("ollama returned status 502"), true},
		{errors.New("ollama returned status 404"), false},
		{context.DeadlineExceeded, false},
		{fmt.Errorf("wrapped: %w", context.Canceled), false},
	}

	for _, tt := range tests {
		if got := IsRetryableError(tt.err); got != tt.want {
			t.Errorf("IsRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestCalculateBackoff(t *testing.T) {
	if got := CalculateBackoff(1, time.Second); got != 2*time.Second {
		t.Fatalf("unexpected backoff %s", got)
	}
	if got := CalculateBackoff(10, time.Second); got != maxBackoff {
		t.Fatalf("expected cap, got %s", got)
	}
}
