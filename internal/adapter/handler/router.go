package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/lecture-quiz/errors"
	"github.com/johnquangdev/lecture-quiz/internal/adapter/dto/common"
	"github.com/johnquangdev/lecture-quiz/pkg/config"
	appmw "github.com/johnquangdev/lecture-quiz/pkg/middleware"
)

// BucketInfo reports archive storage status for the health check
type BucketInfo interface {
	GetBucketInfo(ctx context.Context) (map[string]interface{}, error)
}

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	quizHandler     *Quiz
	pipelineHandler *Pipeline
	storage         BucketInfo // nil when archiving is disabled
	logger          *zap.Logger
}

// NewRouter creates a new router with all handlers. storage may be nil.
func NewRouter(cfg *config.Config, quizHandler *Quiz, pipelineHandler *Pipeline, storage BucketInfo, logger *zap.Logger) *Router {
	return &Router{
		cfg:             cfg,
		quizHandler:     quizHandler,
		pipelineHandler: pipelineHandler,
		storage:         storage,
		logger:          logger,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/transcribe", rt.quizHandler.Transcribe)
	e.POST("/generate-questions", rt.quizHandler.GenerateQuestions)

	if rt.pipelineHandler != nil {
		e.POST("/upload", rt.pipelineHandler.Upload)
		e.GET("/status/:id", rt.pipelineHandler.Status, appmw.RequireJobID("id"))
	}
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		LLMProvider: rt.cfg.LLM.Provider,
		Model:       rt.cfg.LLM.Model,
	}

	if rt.storage != nil {
		info, err := rt.storage.GetBucketInfo(c.Request().Context())
		if err != nil {
			appErr := errors.ErrStorageFailed("bucket info", err)
			if rt.logger != nil {
				rt.logger.Warn("⚠️ Storage health check failed",
					zap.Stringer("app_code", appErr.Code),
					zap.Error(err),
				)
			}
			info = map[string]interface{}{"error": appErr.Message}
			resp.Status = "degraded"
		}
		resp.Storage = info
	}

	return c.JSON(http.StatusOK, resp)
}
