package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lecture-quiz/errors"
	quizdto "github.com/johnquangdev/lecture-quiz/internal/adapter/dto/quiz"
	"github.com/johnquangdev/lecture-quiz/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
	"github.com/johnquangdev/lecture-quiz/internal/usecase/quiz"
)

// Quiz handles transcription and question generation endpoints
type Quiz struct {
	svc    quiz.Service
	logger *zap.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc quiz.Service, logger *zap.Logger) *Quiz {
	return &Quiz{svc: svc, logger: logger}
}

// Transcribe transcribes a local recording and splits it into chunks
// @Summary      Transcribe recording
// @Description  Transcribes a recording available on the server's filesystem and splits it into fixed-duration chunks
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        request  body      quiz.TranscribeRequest   true  "Recording path and optional job id"
// @Success      200      {object}  quiz.TranscribeResponse
// @Failure      400      {object}  common.ErrorResponse     "File not found"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /transcribe [post]
func (h *Quiz) Transcribe(c echo.Context) error {
	var req quizdto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	job, err := h.svc.Transcribe(c.Request().Context(), req.FilePath, req.JobID)
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrFileNotFound):
			return HandleError(h.logger, c, errors.ErrFileNotFound(req.FilePath))
		case stdErrors.Is(err, usecaseErrors.ErrInvalidChunkDuration):
			return HandleError(h.logger, c, errors.ErrInvalidChunkConfig(err))
		default:
			return HandleError(h.logger, c, errors.ErrTranscriptionFailed(err))
		}
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTranscribeResponse(job))
}

// GenerateQuestions generates multiple-choice questions for each chunk
// @Summary      Generate questions
// @Description  Generates questions per segment with the completion model, falling back to keyword questions when the model fails
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        request  body      quiz.GenerateQuestionsRequest   true  "Segments to generate questions for"
// @Success      200      {object}  quiz.GenerateQuestionsResponse
// @Failure      500      {object}  common.ErrorResponse
// @Router       /generate-questions [post]
func (h *Quiz) GenerateQuestions(c echo.Context) error {
	var req quizdto.GenerateQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidSegments(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidSegments(err))
	}

	job, err := h.svc.GenerateQuestions(c.Request().Context(), req.JobID, req.ToChunks(), req.QuestionCount())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrGenerationFailed(err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToGenerateQuestionsResponse(job))
}
