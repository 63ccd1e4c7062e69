package handler

import (
	"context"
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lecture-quiz/errors"
	"github.com/johnquangdev/lecture-quiz/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
	"github.com/johnquangdev/lecture-quiz/internal/usecase/pipeline"
)

const recordingURLExpiry = time.Hour

// FileURLs resolves archived objects to client-accessible URLs
type FileURLs interface {
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Pipeline handles upload and job status endpoints
type Pipeline struct {
	svc    pipeline.Service
	urls   FileURLs // nil when archiving is disabled
	logger *zap.Logger
}

// NewPipelineHandler creates a new pipeline handler. urls may be nil.
func NewPipelineHandler(svc pipeline.Service, urls FileURLs, logger *zap.Logger) *Pipeline {
	return &Pipeline{svc: svc, urls: urls, logger: logger}
}

// Upload accepts a recording and starts processing it
// @Summary      Upload recording
// @Description  Stores a recording and starts transcription and question generation in the background
// @Tags         Pipeline
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Recording file"
// @Success      200    {object}  quiz.UploadResponse
// @Failure      400    {object}  common.ErrorResponse  "No file uploaded"
// @Failure      413    {object}  common.ErrorResponse  "File too large"
// @Failure      500    {object}  common.ErrorResponse
// @Router       /upload [post]
func (h *Pipeline) Upload(c echo.Context) error {
	fh, err := c.FormFile("video")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrNoFileUploaded())
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadFailed(err))
	}
	defer f.Close()

	job, err := h.svc.Submit(c.Request().Context(), fh.Filename, fh.Header.Get(echo.HeaderContentType), f)
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrNoFileUploaded):
			return HandleError(h.logger, c, errors.ErrNoFileUploaded())
		case stdErrors.Is(err, usecaseErrors.ErrFileTooLarge):
			return HandleError(h.logger, c, errors.ErrFileTooLarge())
		default:
			return HandleError(h.logger, c, errors.ErrUploadFailed(err))
		}
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUploadResponse(job))
}

// Status returns the state of a processing job
// @Summary      Job status
// @Description  Returns progress, transcript and questions of an uploaded recording
// @Tags         Pipeline
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  quiz.JobStatusResponse
// @Failure      404  {object}  common.ErrorResponse  "Job not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /status/{id} [get]
func (h *Pipeline) Status(c echo.Context) error {
	id := c.Param("id")

	job, err := h.svc.Status(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrJobNotFound) {
			return HandleError(h.logger, c, errors.ErrJobNotFound(id))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	resp := presenter.ToJobStatusResponse(job)
	if h.urls != nil && job.ObjectName != "" {
		url, err := h.urls.GetFileURL(c.Request().Context(), job.ObjectName, recordingURLExpiry)
		if err != nil {
			if h.logger != nil {
				h.logger.Warn("failed to presign recording url", zap.String("job_id", id), zap.Error(err))
			}
		} else {
			resp.RecordingURL = url
		}
	}

	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}
