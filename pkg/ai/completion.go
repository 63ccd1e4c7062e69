package ai

import (
	"context"
	"fmt"
)

// CompletionOptions carries the sampling configuration for one completion call
type CompletionOptions struct {
	Model       string
	Temperature float64
	TopP        float64
	Stream      bool
}

// Completer is a text-completion backend. Output has no guaranteed structure.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// StatusError is returned when a backend answers with a non-success HTTP status
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}
