package quiz

import "github.com/johnquangdev/lecture-quiz/internal/domain/entities"

// AssembleQuestionSet attaches questions to the chunk they were generated for
func AssembleQuestionSet(chunk entities.Chunk, questions []entities.Question) entities.QuestionSet {
	return entities.QuestionSet{
		SegmentID: chunk.ID,
		StartTime: chunk.StartTime,
		EndTime:   chunk.EndTime,
		Questions: questions,
	}
}
