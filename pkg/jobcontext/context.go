package jobcontext

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyStage        KeyContext = "stage"
	keyRetryAttempt KeyContext = "retry_attempt"
	keyJobStartTime KeyContext = "job_start_time"
	keyMaxAttempts  KeyContext = "max_attempts"
	keyRetryDelay   KeyContext = "retry_delay"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 5 * time.Second
	maxBackoff         = 60 * time.Second
)

// Options configures a job stage
type Options struct {
	Timeout     time.Duration // zero means no deadline beyond the parent's
	MaxAttempts int
	RetryDelay  time.Duration // base delay, doubled per attempt
}

// JobMetadata holds metadata for a job execution
type JobMetadata struct {
	JobID        string
	Stage        string
	RetryAttempt int
	MaxAttempts  int
	StartTime    time.Time
}

// JobBegin initializes a stage context with metadata and an optional timeout
func JobBegin(parentCtx context.Context, jobID, stage string, opts Options) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(parentCtx)
	}

	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}

	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyStage, stage)
	ctx = context.WithValue(ctx, keyRetryAttempt, 0)
	ctx = context.WithValue(ctx, keyMaxAttempts, opts.MaxAttempts)
	ctx = context.WithValue(ctx, keyRetryDelay, opts.RetryDelay)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// JobEnd runs jobFunc with panic recovery, retrying retryable failures
// until the attempt budget or the context runs out
func JobEnd(ctx context.Context, jobFunc func(context.Context) error) error {
	var (
		err         error
		maxAttempts = GetMaxAttempts(ctx)
		attempt     = GetRetryAttempt(ctx)
		delay       = getRetryDelay(ctx)
	)

	for attempt < maxAttempts {
		ctx = SetRetryAttempt(ctx, attempt)

		func(ctx context.Context) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("panic recovered: %v", p)
				}
			}()

			if ctx.Err() != nil {
				err = fmt.Errorf("context cancelled before job execution: %w", ctx.Err())
				return
			}

			err = jobFunc(ctx)
		}(ctx)

		if err == nil {
			return nil
		}

		if !IsRetryableError(err) {
			return fmt.Errorf("non-retryable error: %w", err)
		}

		attempt++
		if attempt >= maxAttempts {
			return fmt.Errorf("max attempts (%d) exceeded: %w", maxAttempts, err)
		}

		timer := time.NewTimer(CalculateBackoff(attempt, delay))
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("job failed after %d attempts: %w", maxAttempts, err)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (string, bool) {
	jobID, ok := ctx.Value(keyJobID).(string)
	return jobID, ok
}

// GetStage extracts the stage name from context
func GetStage(ctx context.Context) (string, bool) {
	stage, ok := ctx.Value(keyStage).(string)
	return stage, ok
}

// GetRetryAttempt extracts current retry attempt from context
func GetRetryAttempt(ctx context.Context) int {
	attempt, ok := ctx.Value(keyRetryAttempt).(int)
	if !ok {
		return 0
	}
	return attempt
}

// SetRetryAttempt updates retry attempt in context
func SetRetryAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, keyRetryAttempt, attempt)
}

// GetMaxAttempts extracts the attempt budget from context
func GetMaxAttempts(ctx context.Context) int {
	maxAttempts, ok := ctx.Value(keyMaxAttempts).(int)
	if !ok {
		return defaultMaxAttempts
	}
	return maxAttempts
}

func getRetryDelay(ctx context.Context) time.Duration {
	delay, ok := ctx.Value(keyRetryDelay).(time.Duration)
	if !ok {
		return defaultRetryDelay
	}
	return delay
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	stage, _ := GetStage(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:        jobID,
		Stage:        stage,
		RetryAttempt: GetRetryAttempt(ctx),
		MaxAttempts:  GetMaxAttempts(ctx),
		StartTime:    startTime,
	}
}

// IsRetryableError checks if an error should trigger a retry.
// Network errors, rate limits and upstream 5xx responses are retryable.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// The stage's own deadline is gone once exceeded; retrying cannot help.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "status 429") {
		return true
	}

	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	if strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "try again") {
		return true
	}

	return false
}

// CalculateBackoff calculates exponential backoff duration
func CalculateBackoff(attempt int, baseDelay time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	// 2^attempt * baseDelay, capped
	backoff := time.Duration(1<<uint(attempt)) * baseDelay
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}
