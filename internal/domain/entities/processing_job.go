package entities

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingStatus represents the stage of an uploaded recording's processing job
type ProcessingStatus string

const (
	ProcessingStatusTranscribing        ProcessingStatus = "transcribing"         // Waiting on the transcriber
	ProcessingStatusGeneratingQuestions ProcessingStatus = "generating-questions" // Chunks ready, questions in flight
	ProcessingStatusCompleted           ProcessingStatus = "completed"            // All processing done
	ProcessingStatusError               ProcessingStatus = "error"                // Processing failed
)

// ProcessingJob tracks an uploaded recording through transcription and question generation.
// It lives in memory only and expires after the configured TTL.
type ProcessingJob struct {
	ID         string           `json:"id"`
	Filename   string           `json:"filename"`
	FilePath   string           `json:"filePath"`
	ObjectName string           `json:"objectName,omitempty"`
	Status     ProcessingStatus `json:"status"`
	Progress   int              `json:"progress"`
	Transcript []Chunk          `json:"transcript,omitempty"`
	FullText   string           `json:"fullText,omitempty"`
	Questions  []QuestionSet    `json:"questions,omitempty"`
	Error      string           `json:"error,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// NewProcessingJob creates a job for a freshly uploaded recording
func NewProcessingJob(filename, filePath string) *ProcessingJob {
	now := time.Now()
	return &ProcessingJob{
		ID:        uuid.NewString(),
		Filename:  filename,
		FilePath:  filePath,
		Status:    ProcessingStatusTranscribing,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsTerminal reports whether the job has finished, successfully or not
func (j *ProcessingJob) IsTerminal() bool {
	return j.Status == ProcessingStatusCompleted || j.Status == ProcessingStatusError
}

// MarkAsGeneratingQuestions records the transcription output and advances the job
func (j *ProcessingJob) MarkAsGeneratingQuestions(chunks []Chunk, fullText string) {
	j.Status = ProcessingStatusGeneratingQuestions
	j.Progress = 50
	j.Transcript = chunks
	j.FullText = fullText
	j.UpdatedAt = time.Now()
}

// MarkAsCompleted records the generated question sets
func (j *ProcessingJob) MarkAsCompleted(sets []QuestionSet) {
	j.Status = ProcessingStatusCompleted
	j.Progress = 100
	j.Questions = sets
	j.UpdatedAt = time.Now()
}

// MarkAsFailed marks job as failed with a caller-facing message
func (j *ProcessingJob) MarkAsFailed(errMsg string) {
	j.Status = ProcessingStatusError
	j.Error = errMsg
	j.UpdatedAt = time.Now()
}
