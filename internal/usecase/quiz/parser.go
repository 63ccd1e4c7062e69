package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
)

// Parser extracts question payloads from free-form model output
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a new Parser instance. logger may be nil.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// questionsPayload keeps entries raw so one badly typed question does not
// discard its siblings
type questionsPayload struct {
	Questions []json.RawMessage `json:"questions"`
}

type rawQuestion struct {
	Question      string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectAnswer answerIndex `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
}

// answerIndex accepts a JSON number, a numeric string or a single option letter.
// Anything else decodes to -1 so the question is rejected as malformed later.
type answerIndex int

func (a *answerIndex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		if i, err := strconv.Atoi(n.String()); err == nil {
			*a = answerIndex(i)
			return nil
		}
		// 2.0 and 2e0 are still option 2
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			*a = answerIndex(int(f))
			return nil
		}
		*a = -1
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*a = -1
		return nil
	}
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		*a = answerIndex(i)
		return nil
	}
	if len(s) == 1 {
		if c := s[0] | 0x20; c >= 'a' && c <= 'd' {
			*a = answerIndex(c - 'a')
			return nil
		}
	}
	*a = -1
	return nil
}

// ExtractQuestions locates the outermost {...} span in raw and decodes its
// questions array. Missing fields take zero values; an absent or empty array
// is a success with no questions. Entries whose fields have the wrong JSON
// type are skipped. Every question gets a fresh ID.
func (p *Parser) ExtractQuestions(raw string) ([]entities.Question, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var parsed questionsPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, &Failure{Reason: ReasonMalformedJSON, Err: err}
	}

	questions := make([]entities.Question, 0, len(parsed.Questions))
	for i, entry := range parsed.Questions {
		var q rawQuestion
		if err := json.Unmarshal(entry, &q); err != nil {
			p.logger.Warn("⚠️ Skipping undecodable question",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		questions = append(questions, entities.NewQuestion(q.Question, q.Options, int(q.CorrectAnswer), q.Explanation))
	}
	return questions, nil
}

// extractJSON returns the span between the first '{' and the last '}'.
// Markdown fences and chatter around the object are dropped with it.
func extractJSON(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", &Failure{Reason: ReasonNoJSONFound, Err: errors.New("no JSON object in model output")}
	}
	return content[start : end+1], nil
}
