package quiz

import "fmt"

// FailureReason tags why the model path produced no questions
type FailureReason string

const (
	ReasonNoJSONFound   FailureReason = "NoJsonFound"   // no {...} span in the model output
	ReasonMalformedJSON FailureReason = "MalformedJson" // span found but not parseable
	ReasonUpstream      FailureReason = "Upstream"      // transport error or non-2xx status
	ReasonTimeout       FailureReason = "Timeout"       // model call exceeded its deadline
)

// Failure is a tagged, locally recoverable failure of the model path
type Failure struct {
	Reason FailureReason
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Reason, f.Err)
	}
	return string(f.Reason)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
