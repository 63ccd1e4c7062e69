package quiz

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
)

const (
	minKeyTermLength = 7
	fallbackTerm     = "concept"
	fallbackAnswer   = 1
)

// SynthesizeFallbackQuestions builds placeholder questions from the chunk's
// vocabulary without calling any model. Output is deterministic apart from IDs.
func SynthesizeFallbackQuestions(chunkText string, count int) []entities.Question {
	terms := keyTerms(chunkText)

	n := count
	if len(terms) < n {
		n = len(terms)
	}

	questions := make([]entities.Question, 0, max(n, 0))
	for i := 0; i < n; i++ {
		term := fallbackTerm
		if i < len(terms) {
			term = terms[i]
		}
		questions = append(questions, entities.NewQuestion(
			fmt.Sprintf("What is mentioned about %s in this segment?", term),
			[]string{
				fmt.Sprintf("%s is the main topic", term),
				fmt.Sprintf("%s is briefly mentioned", term),
				fmt.Sprintf("%s is not discussed", term),
				fmt.Sprintf("%s is explained in detail", term),
			},
			fallbackAnswer,
			fmt.Sprintf("Based on the transcript, %s is mentioned in the context of the lecture content.", term),
		))
	}
	return questions
}

// keyTerms returns whitespace-separated tokens of at least minKeyTermLength
// letters, in order of appearance. Tokens with digits or punctuation are skipped.
func keyTerms(text string) []string {
	terms := make([]string, 0)
	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) < minKeyTermLength {
			continue
		}
		if strings.IndexFunc(tok, func(r rune) bool { return !unicode.IsLetter(r) }) != -1 {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}
