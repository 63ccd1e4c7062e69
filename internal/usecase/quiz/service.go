package quiz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
	"github.com/johnquangdev/lecture-quiz/pkg/ai"
	"github.com/johnquangdev/lecture-quiz/pkg/config"
)

// Service defines the quiz use cases
type Service interface {
	// Transcribe converts a local recording into fixed-duration chunks
	Transcribe(ctx context.Context, filePath, jobID string) (*entities.TranscriptionJob, error)
	// GenerateQuestions returns one question set per chunk, in chunk order
	GenerateQuestions(ctx context.Context, jobID string, chunks []entities.Chunk, count int) (*entities.GenerationJob, error)
}

// QuestionCache stores serialized model-path questions by prompt key
type QuestionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GenerationConfig is built once at startup and shared read-only by every request
type GenerationConfig struct {
	Model                string
	Temperature          float64
	TopP                 float64
	Stream               bool
	Timeout              time.Duration // per model call
	Concurrency          int
	DefaultCount         int
	MaxCount             int
	ChunkDuration        float64 // seconds
	TranscriptionTimeout time.Duration
	CacheTTL             time.Duration
}

// NewGenerationConfig derives the generation settings from application config
func NewGenerationConfig(cfg *config.Config) GenerationConfig {
	return GenerationConfig{
		Model:                cfg.LLM.Model,
		Temperature:          cfg.LLM.Temperature,
		TopP:                 cfg.LLM.TopP,
		Stream:               cfg.LLM.Stream,
		Timeout:              cfg.LLM.Timeout,
		Concurrency:          cfg.Quiz.Concurrency,
		DefaultCount:         cfg.Quiz.DefaultQuestionCount,
		MaxCount:             cfg.Quiz.MaxQuestionCount,
		ChunkDuration:        cfg.Transcription.ChunkDuration,
		TranscriptionTimeout: cfg.Transcription.Timeout,
		CacheTTL:             cfg.Cache.TTL,
	}
}

type quizService struct {
	completer   ai.Completer
	transcriber ai.Transcriber
	cache       QuestionCache
	parser      *Parser
	cfg         GenerationConfig
	logger      *zap.Logger
}

// NewService creates the quiz service. cache may be nil.
func NewService(completer ai.Completer, transcriber ai.Transcriber, cache QuestionCache, cfg GenerationConfig, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.DefaultCount < 1 {
		cfg.DefaultCount = 2
	}
	return &quizService{
		completer:   completer,
		transcriber: transcriber,
		cache:       cache,
		parser:      NewParser(logger),
		cfg:         cfg,
		logger:      logger,
	}
}

// Transcribe runs the transcriber on filePath and chunks its segments
func (s *quizService) Transcribe(ctx context.Context, filePath, jobID string) (*entities.TranscriptionJob, error) {
	if filePath == "" {
		return nil, usecaseErrors.ErrFileNotFound
	}
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrFileNotFound, filePath)
	}
	if jobID == "" {
		jobID = uuid.NewString()
	}

	if s.cfg.TranscriptionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TranscriptionTimeout)
		defer cancel()
	}

	s.logger.Info("🎙️ Transcribing recording",
		zap.String("job_id", jobID),
		zap.String("file_path", filePath),
	)

	started := time.Now()
	transcription, err := s.transcriber.Transcribe(ctx, filePath)
	if err != nil {
		s.logger.Error("❌ Transcription failed",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	fragments := make([]entities.Fragment, 0, len(transcription.Segments))
	for _, seg := range transcription.Segments {
		fragments = append(fragments, entities.Fragment{Start: seg.Start, End: seg.End, Text: seg.Text})
	}

	chunks, err := AssembleChunks(fragments, s.cfg.ChunkDuration)
	if err != nil {
		return nil, err
	}

	fullText := transcription.Text
	if fullText == "" {
		fullText = FullText(fragments)
	}

	s.logger.Info("✅ Transcription chunked",
		zap.String("job_id", jobID),
		zap.Int("fragments", len(fragments)),
		zap.Int("chunks", len(chunks)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &entities.TranscriptionJob{
		ID:       jobID,
		Chunks:   chunks,
		FullText: fullText,
	}, nil
}

// GenerateQuestions processes chunks in parallel. A chunk whose model path fails
// falls back to synthesized questions, so only cancellation of ctx fails the job.
func (s *quizService) GenerateQuestions(ctx context.Context, jobID string, chunks []entities.Chunk, count int) (*entities.GenerationJob, error) {
	if jobID == "" {
		jobID = uuid.NewString()
	}
	count = s.normalizeCount(count)

	s.logger.Info("🧠 Generating questions",
		zap.String("job_id", jobID),
		zap.Int("chunks", len(chunks)),
		zap.Int("questions_per_chunk", count),
	)

	sets := make([]entities.QuestionSet, len(chunks))

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			sets[i] = AssembleQuestionSet(chunk, s.questionsForChunk(ctx, jobID, chunk, count))
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info("✅ Questions generated",
		zap.String("job_id", jobID),
		zap.Int("question_sets", len(sets)),
	)

	return &entities.GenerationJob{ID: jobID, QuestionSets: sets}, nil
}

func (s *quizService) normalizeCount(count int) int {
	if count <= 0 {
		count = s.cfg.DefaultCount
	}
	if s.cfg.MaxCount > 0 && count > s.cfg.MaxCount {
		count = s.cfg.MaxCount
	}
	return count
}

// questionsForChunk never fails: every model-path failure ends in the fallback
func (s *quizService) questionsForChunk(ctx context.Context, jobID string, chunk entities.Chunk, count int) []entities.Question {
	key := s.cacheKey(chunk.Text, count)
	if cached, ok := s.cachedQuestions(ctx, key); ok {
		return cached
	}

	questions, err := s.askModel(ctx, chunk.Text, count)
	if err != nil {
		reason := FailureReason("")
		var f *Failure
		if errors.As(err, &f) {
			reason = f.Reason
		}
		s.logger.Warn("⚠️ Model path failed, using fallback questions",
			zap.String("job_id", jobID),
			zap.String("segment_id", chunk.ID),
			zap.String("reason", string(reason)),
			zap.Error(err),
		)
		return SynthesizeFallbackQuestions(chunk.Text, count)
	}

	usable := make([]entities.Question, 0, len(questions))
	for _, q := range questions {
		if !q.IsWellFormed() {
			s.logger.Warn("⚠️ Dropping malformed question",
				zap.String("job_id", jobID),
				zap.String("segment_id", chunk.ID),
				zap.Int("options", len(q.Options)),
				zap.Int("correct_answer", q.CorrectAnswerIndex),
			)
			continue
		}
		usable = append(usable, q)
	}

	if len(usable) == 0 {
		s.logger.Warn("⚠️ Model returned no usable questions, using fallback questions",
			zap.String("job_id", jobID),
			zap.String("segment_id", chunk.ID),
		)
		return SynthesizeFallbackQuestions(chunk.Text, count)
	}

	s.storeQuestions(ctx, key, usable)
	return usable
}

// askModel makes exactly one bounded model call and tags any failure
func (s *quizService) askModel(ctx context.Context, text string, count int) ([]entities.Question, error) {
	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	raw, err := s.completer.Complete(callCtx, BuildQuestionPrompt(text, count), ai.CompletionOptions{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
		TopP:        s.cfg.TopP,
		Stream:      s.cfg.Stream,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, &Failure{Reason: ReasonTimeout, Err: err}
		}
		return nil, &Failure{Reason: ReasonUpstream, Err: err}
	}

	return s.parser.ExtractQuestions(raw)
}

func (s *quizService) cacheKey(text string, count int) string {
	sum := sha256.Sum256([]byte(s.cfg.Model + "\x00" + strconv.Itoa(count) + "\x00" + text))
	return "quiz:questions:" + hex.EncodeToString(sum[:])
}

// cachedQuestions returns a cached model result with fresh question IDs
func (s *quizService) cachedQuestions(ctx context.Context, key string) ([]entities.Question, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("⚠️ Question cache read failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var questions []entities.Question
	if err := json.Unmarshal(data, &questions); err != nil || len(questions) == 0 {
		return nil, false
	}
	for i := range questions {
		questions[i].ID = uuid.NewString()
	}
	return questions, true
}

func (s *quizService) storeQuestions(ctx context.Context, key string, questions []entities.Question) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("⚠️ Question cache write failed", zap.Error(err))
	}
}
