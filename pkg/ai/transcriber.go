package ai

import "context"

// Segment is a timed piece of recognised speech, in seconds
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Transcription is the output of a speech-to-text backend
type Transcription struct {
	Text     string
	Language string
	Duration float64
	Segments []Segment
}

// Transcriber converts a local audio or video file into timed segments
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcription, error)
}
