package presenter

import (
	"github.com/johnquangdev/lecture-quiz/internal/adapter/dto/quiz"
	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
)

// ToChunkResponses converts chunks to their DTOs
func ToChunkResponses(chunks []entities.Chunk) []quiz.ChunkResponse {
	out := make([]quiz.ChunkResponse, len(chunks))
	for i, c := range chunks {
		out[i] = quiz.ChunkResponse{
			ID:        c.ID,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Text:      c.Text,
			Duration:  c.Duration,
		}
	}
	return out
}

// ToTranscribeResponse converts a TranscriptionJob to its DTO
func ToTranscribeResponse(job *entities.TranscriptionJob) *quiz.TranscribeResponse {
	if job == nil {
		return nil
	}
	return &quiz.TranscribeResponse{
		JobID:    job.ID,
		Segments: ToChunkResponses(job.Chunks),
		FullText: job.FullText,
	}
}

// ToQuestionSetResponses converts question sets to their DTOs
func ToQuestionSetResponses(sets []entities.QuestionSet) []quiz.QuestionSetResponse {
	out := make([]quiz.QuestionSetResponse, len(sets))
	for i, set := range sets {
		questions := make([]quiz.QuestionResponse, len(set.Questions))
		for j, q := range set.Questions {
			options := q.Options
			if options == nil {
				options = []string{}
			}
			questions[j] = quiz.QuestionResponse{
				ID:            q.ID,
				Question:      q.Text,
				Options:       options,
				CorrectAnswer: q.CorrectAnswerIndex,
				Explanation:   q.Explanation,
			}
		}
		out[i] = quiz.QuestionSetResponse{
			SegmentID: set.SegmentID,
			StartTime: set.StartTime,
			EndTime:   set.EndTime,
			Questions: questions,
		}
	}
	return out
}

// ToGenerateQuestionsResponse converts a GenerationJob to its DTO
func ToGenerateQuestionsResponse(job *entities.GenerationJob) *quiz.GenerateQuestionsResponse {
	if job == nil {
		return nil
	}
	return &quiz.GenerateQuestionsResponse{
		JobID:        job.ID,
		QuestionSets: ToQuestionSetResponses(job.QuestionSets),
	}
}

// ToUploadResponse converts a freshly submitted job to the upload acknowledgement
func ToUploadResponse(job *entities.ProcessingJob) *quiz.UploadResponse {
	return &quiz.UploadResponse{
		ID:      job.ID,
		Message: "File uploaded successfully",
		Status:  string(job.Status),
	}
}

// ToJobStatusResponse converts a ProcessingJob to its DTO
func ToJobStatusResponse(job *entities.ProcessingJob) *quiz.JobStatusResponse {
	if job == nil {
		return nil
	}
	resp := &quiz.JobStatusResponse{
		ID:        job.ID,
		Filename:  job.Filename,
		Status:    string(job.Status),
		Progress:  job.Progress,
		FullText:  job.FullText,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
	if len(job.Transcript) > 0 {
		resp.Transcript = ToChunkResponses(job.Transcript)
	}
	if len(job.Questions) > 0 {
		resp.Questions = ToQuestionSetResponses(job.Questions)
	}
	return resp
}
