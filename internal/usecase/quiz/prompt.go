package quiz

import "fmt"

const questionPromptTemplate = `Based on the following lecture transcript segment, generate %d multiple-choice questions.
Each question should have 4 options (A, B, C, D) with only one correct answer.

Transcript:
%s

Please format your response as JSON with the following structure:
{
    "questions": [
        {
            "question": "Question text here?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of why this is correct"
        }
    ]
}

correct_answer is the 0-based index of the correct option.
Make sure the questions test understanding of key concepts mentioned in the transcript.
`

// BuildQuestionPrompt renders the instruction sent to the completion model.
// The response shape it describes is the only contract with the model.
func BuildQuestionPrompt(chunkText string, count int) string {
	return fmt.Sprintf(questionPromptTemplate, count, chunkText)
}
