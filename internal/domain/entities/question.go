package entities

import "github.com/google/uuid"

// OptionCount is the number of options every multiple-choice question carries
const OptionCount = 4

// Question is a single multiple-choice question
type Question struct {
	ID                 string   `json:"id"`
	Text               string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswer"`
	Explanation        string   `json:"explanation"`
}

// NewQuestion creates a question with a freshly generated identifier
func NewQuestion(text string, options []string, correct int, explanation string) Question {
	if options == nil {
		options = []string{}
	}
	return Question{
		ID:                 uuid.NewString(),
		Text:               text,
		Options:            options,
		CorrectAnswerIndex: correct,
		Explanation:        explanation,
	}
}

// IsWellFormed reports whether the question has exactly four options and a
// correct answer index pointing into them
func (q Question) IsWellFormed() bool {
	return len(q.Options) == OptionCount &&
		q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < len(q.Options)
}

// QuestionSet holds the questions generated for one chunk
type QuestionSet struct {
	SegmentID string     `json:"segmentId"`
	StartTime float64    `json:"startTime"`
	EndTime   float64    `json:"endTime"`
	Questions []Question `json:"questions"`
}

// GenerationJob is the result of the question generation stage
type GenerationJob struct {
	ID           string        `json:"job_id"`
	QuestionSets []QuestionSet `json:"question_sets"`
}
