package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error surfaced to HTTP callers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	msg := "Internal server error"
	if err != nil {
		msg = err.Error()
	}
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   msg,
		Timestamp: time.Now(),
	}
}

// Transcription Errors
func ErrFileNotFound(path string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_FILE_NOT_FOUND,
		Message:   "File not found",
		Timestamp: time.Now(),
	}.WithDetail("file_path", path)
}

func ErrNoFileUploaded() AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_NO_FILE_UPLOADED,
		Message:   "No file uploaded",
		Timestamp: time.Now(),
	}
}

func ErrFileTooLarge() AppError {
	return AppError{
		HTTPCode:  http.StatusRequestEntityTooLarge,
		Code:      ErrorCode_FILE_TOO_LARGE,
		Message:   "File too large",
		Timestamp: time.Now(),
	}
}

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_TRANSCRIPTION_FAILED,
		Message:   fmt.Sprintf("Transcription failed: %v", err),
		Timestamp: time.Now(),
	}
}

func ErrInvalidChunkConfig(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INVALID_CHUNK_CONFIG,
		Message:   err.Error(),
		Timestamp: time.Now(),
	}
}

// Question Generation Errors

// ErrInvalidSegments reports malformed segment input on the generation endpoint.
// Clients of that endpoint expect 500 here, not 400.
func ErrInvalidSegments(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INVALID_SEGMENTS,
		Message:   fmt.Sprintf("Invalid segments: %v", err),
		Timestamp: time.Now(),
	}
}

func ErrGenerationFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_GENERATION_FAILED,
		Message:   "Question generation failed",
		Timestamp: time.Now(),
	}
}

// Processing Job Errors
func ErrJobNotFound(jobID string) AppError {
	return AppError{
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_JOB_NOT_FOUND,
		Message:   "Job not found",
		Timestamp: time.Now(),
	}.WithDetail("job_id", jobID)
}

func ErrUploadFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_UPLOAD_FAILED,
		Message:   "Upload failed",
		Timestamp: time.Now(),
	}
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_PROCESSING_FAILED,
		Message:   "Processing failed",
		Timestamp: time.Now(),
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:   fmt.Sprintf("Storage operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}
