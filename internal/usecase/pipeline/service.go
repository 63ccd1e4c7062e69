package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/lecture-quiz/errors"
	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
	"github.com/johnquangdev/lecture-quiz/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
	"github.com/johnquangdev/lecture-quiz/internal/usecase/quiz"
	"github.com/johnquangdev/lecture-quiz/pkg/jobcontext"
)

// Uploads persists uploaded recordings where the transcriber can read them
type Uploads interface {
	Save(originalName string, r io.Reader) (string, int64, error)
}

// Archive is optional long-term storage for recordings and results
type Archive interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	UploadJSON(ctx context.Context, objectName string, v interface{}) error
}

// Service defines the upload pipeline use cases
type Service interface {
	// Submit stores the recording and starts processing it in the background
	Submit(ctx context.Context, filename, contentType string, r io.Reader) (*entities.ProcessingJob, error)
	// Status returns the current snapshot of a job
	Status(ctx context.Context, id string) (*entities.ProcessingJob, error)
	// Shutdown cancels running jobs and waits for them to stop
	Shutdown(ctx context.Context) error
}

// Config holds pipeline settings
type Config struct {
	QuestionCount        int
	TranscriptionTimeout time.Duration
	MaxAttempts          int
	RetryDelay           time.Duration
}

type pipelineService struct {
	quiz    quiz.Service
	jobs    *JobStore
	uploads Uploads
	archive Archive // nil when archiving is disabled
	cfg     Config
	logger  *zap.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates the pipeline service. archive may be nil.
func NewService(quizSvc quiz.Service, jobs *JobStore, uploads Uploads, archive Archive, cfg Config, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &pipelineService{
		quiz:    quizSvc,
		jobs:    jobs,
		uploads: uploads,
		archive: archive,
		cfg:     cfg,
		logger:  logger,
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// Submit saves the upload, registers a job in "transcribing" state and processes it asynchronously
func (s *pipelineService) Submit(ctx context.Context, filename, contentType string, r io.Reader) (*entities.ProcessingJob, error) {
	if r == nil || filename == "" {
		return nil, usecaseErrors.ErrNoFileUploaded
	}

	path, size, err := s.uploads.Save(filename, r)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, usecaseErrors.ErrFileTooLarge
		}
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	job := entities.NewProcessingJob(filename, path)
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to register job: %w", err)
	}

	s.logger.Info("📥 Recording uploaded",
		zap.String("job_id", job.ID),
		zap.String("filename", filename),
		zap.Int64("size", size),
	)

	s.wg.Add(1)
	go func(job entities.ProcessingJob) {
		defer s.wg.Done()
		s.process(&job, contentType, size)
	}(*job)

	return job, nil
}

// Status returns the current snapshot of a job
func (s *pipelineService) Status(ctx context.Context, id string) (*entities.ProcessingJob, error) {
	return s.jobs.Get(ctx, id)
}

// Shutdown cancels running jobs and waits until they have recorded their outcome
func (s *pipelineService) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *pipelineService) process(job *entities.ProcessingJob, contentType string, size int64) {
	s.archiveRecording(job, contentType, size)

	tctx, cancel := jobcontext.JobBegin(s.baseCtx, job.ID, "transcribe", jobcontext.Options{
		Timeout:     s.cfg.TranscriptionTimeout,
		MaxAttempts: s.cfg.MaxAttempts,
		RetryDelay:  s.cfg.RetryDelay,
	})
	var transcription *entities.TranscriptionJob
	err := jobcontext.JobEnd(tctx, func(ctx context.Context) error {
		if attempt := jobcontext.GetRetryAttempt(ctx); attempt > 0 {
			s.logger.Warn("🔁 Retrying transcription",
				zap.String("job_id", job.ID),
				zap.Int("attempt", attempt+1),
			)
		}
		var err error
		transcription, err = s.quiz.Transcribe(ctx, job.FilePath, job.ID)
		return err
	})
	cancel()
	if err != nil {
		s.fail(tctx, job, err)
		return
	}

	job.MarkAsGeneratingQuestions(transcription.Chunks, transcription.FullText)
	s.save(job)

	gctx, cancel := jobcontext.JobBegin(s.baseCtx, job.ID, "generate", jobcontext.Options{MaxAttempts: 1})
	var generation *entities.GenerationJob
	err = jobcontext.JobEnd(gctx, func(ctx context.Context) error {
		var err error
		generation, err = s.quiz.GenerateQuestions(ctx, job.ID, transcription.Chunks, s.cfg.QuestionCount)
		return err
	})
	cancel()
	if err != nil {
		s.fail(gctx, job, err)
		return
	}

	job.MarkAsCompleted(generation.QuestionSets)
	s.archiveResult(job)
	s.save(job)

	s.logger.Info("✅ Processing completed",
		zap.String("job_id", job.ID),
		zap.Int("segments", len(job.Transcript)),
		zap.Int("question_sets", len(job.Questions)),
	)
}

// fail records the caller-facing failure; stageCtx carries the stage metadata from JobBegin
func (s *pipelineService) fail(stageCtx context.Context, job *entities.ProcessingJob, err error) {
	appErr := apperrors.ErrProcessingFailed(err)
	meta := jobcontext.GetJobMetadata(stageCtx)
	s.logger.Error("❌ Processing failed",
		zap.String("job_id", meta.JobID),
		zap.String("stage", meta.Stage),
		zap.Int("max_attempts", meta.MaxAttempts),
		zap.Duration("elapsed", time.Since(meta.StartTime)),
		zap.Stringer("app_code", appErr.Code),
		zap.Error(err),
	)
	job.MarkAsFailed(appErr.Message)
	s.save(job)
}

// save uses a fresh context so the final state is recorded even after shutdown began
func (s *pipelineService) save(job *entities.ProcessingJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.jobs.Save(ctx, job); err != nil {
		s.logger.Error("❌ Failed to save job state",
			zap.String("job_id", job.ID),
			zap.String("status", string(job.Status)),
			zap.Error(err),
		)
	}
}

func (s *pipelineService) archiveRecording(job *entities.ProcessingJob, contentType string, size int64) {
	if s.archive == nil {
		return
	}

	f, err := os.Open(job.FilePath)
	if err != nil {
		s.logger.Warn("⚠️ Could not open recording for archiving", zap.String("job_id", job.ID), zap.Error(err))
		return
	}
	defer f.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectName := fmt.Sprintf("recordings/%s%s", job.ID, filepath.Ext(job.FilePath))
	if err := s.archive.UploadFile(s.baseCtx, objectName, f, size, contentType); err != nil {
		s.logger.Warn("⚠️ Failed to archive recording", zap.String("job_id", job.ID), zap.Error(err))
		return
	}

	job.ObjectName = objectName
	s.save(job)
}

func (s *pipelineService) archiveResult(job *entities.ProcessingJob) {
	if s.archive == nil {
		return
	}

	objectName := fmt.Sprintf("quizzes/%s.json", job.ID)
	result := entities.GenerationJob{ID: job.ID, QuestionSets: job.Questions}
	if err := s.archive.UploadJSON(s.baseCtx, objectName, result); err != nil {
		s.logger.Warn("⚠️ Failed to archive quiz", zap.String("job_id", job.ID), zap.Error(err))
	}
}
