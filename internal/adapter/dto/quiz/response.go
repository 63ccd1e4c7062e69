package quiz

import "time"

// ChunkResponse represents a transcript chunk
type ChunkResponse struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Text      string  `json:"text"`
	Duration  float64 `json:"duration"`
}

// TranscribeResponse represents the chunked transcript of a recording
type TranscribeResponse struct {
	JobID    string          `json:"job_id"`
	Segments []ChunkResponse `json:"segments"`
	FullText string          `json:"full_text"`
}

// QuestionResponse represents a multiple-choice question
type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuestionSetResponse represents the questions generated for one chunk
type QuestionSetResponse struct {
	SegmentID string             `json:"segmentId"`
	StartTime float64            `json:"startTime"`
	EndTime   float64            `json:"endTime"`
	Questions []QuestionResponse `json:"questions"`
}

// GenerateQuestionsResponse represents the question sets of a request, in segment order
type GenerateQuestionsResponse struct {
	JobID        string                `json:"job_id"`
	QuestionSets []QuestionSetResponse `json:"question_sets"`
}

// UploadResponse is returned once an upload is accepted
type UploadResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// JobStatusResponse represents a processing job
type JobStatusResponse struct {
	ID           string                `json:"id"`
	Filename     string                `json:"filename"`
	Status       string                `json:"status"`
	Progress     int                   `json:"progress"`
	Transcript   []ChunkResponse       `json:"transcript,omitempty"`
	FullText     string                `json:"fullText,omitempty"`
	Questions    []QuestionSetResponse `json:"questions,omitempty"`
	Error        string                `json:"error,omitempty"`
	RecordingURL string                `json:"recordingUrl,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}
