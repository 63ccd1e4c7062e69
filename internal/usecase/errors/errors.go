package errors

import "errors"

// Transcription errors
var (
	ErrFileNotFound         = errors.New("file not found")
	ErrInvalidChunkDuration = errors.New("chunk duration must be positive")
)

// Processing job errors
var (
	ErrJobNotFound    = errors.New("job not found")
	ErrNoFileUploaded = errors.New("no file uploaded")
	ErrFileTooLarge   = errors.New("uploaded file is too large")
)
