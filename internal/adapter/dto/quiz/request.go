package quiz

import "github.com/johnquangdev/lecture-quiz/internal/domain/entities"

// TranscribeRequest represents the request to transcribe a local recording
type TranscribeRequest struct {
	FilePath string `json:"file_path" example:"/data/uploads/lecture.mp4"`
	JobID    string `json:"job_id,omitempty" example:"job-123"`
}

// SegmentRequest is one chunk submitted for question generation.
// Pointer fields distinguish absent keys from zero values.
type SegmentRequest struct {
	ID        *string  `json:"id" validate:"required"`
	StartTime *float64 `json:"startTime" validate:"required"`
	EndTime   *float64 `json:"endTime" validate:"required"`
	Text      *string  `json:"text" validate:"required"`
}

// GenerateQuestionsRequest represents the request to generate questions for chunks
type GenerateQuestionsRequest struct {
	Segments               []SegmentRequest `json:"segments" validate:"dive"`
	JobID                  string           `json:"job_id,omitempty"`
	NumQuestionsPerSegment *int             `json:"num_questions_per_segment,omitempty" example:"2"`
}

// ToChunks converts validated segments into domain chunks
func (r *GenerateQuestionsRequest) ToChunks() []entities.Chunk {
	chunks := make([]entities.Chunk, 0, len(r.Segments))
	for _, s := range r.Segments {
		c := entities.Chunk{}
		if s.ID != nil {
			c.ID = *s.ID
		}
		if s.StartTime != nil {
			c.StartTime = *s.StartTime
		}
		if s.EndTime != nil {
			c.EndTime = *s.EndTime
		}
		if s.Text != nil {
			c.Text = *s.Text
		}
		chunks = append(chunks, c)
	}
	return chunks
}

// QuestionCount returns the requested count, or 0 to use the server default
func (r *GenerateQuestionsRequest) QuestionCount() int {
	if r.NumQuestionsPerSegment == nil {
		return 0
	}
	return *r.NumQuestionsPerSegment
}
