package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/lecture-quiz/docs"
	pkgvalidator "github.com/johnquangdev/lecture-quiz/pkg/validator"

	"github.com/johnquangdev/lecture-quiz/internal/adapter/handler"
	"github.com/johnquangdev/lecture-quiz/internal/infrastructure/cache"
	"github.com/johnquangdev/lecture-quiz/internal/infrastructure/storage"
	"github.com/johnquangdev/lecture-quiz/internal/usecase/pipeline"
	"github.com/johnquangdev/lecture-quiz/internal/usecase/quiz"
	pkgai "github.com/johnquangdev/lecture-quiz/pkg/ai"
	"github.com/johnquangdev/lecture-quiz/pkg/config"
	appmw "github.com/johnquangdev/lecture-quiz/pkg/middleware"
)

// @title           Lecture Quiz API
// @version         1.0
// @description     Transcribes lecture recordings, splits them into timed chunks and generates multiple-choice questions per chunk.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(appmw.ZapLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Uploads may be large; leave headroom for multipart framing
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Uploads.MaxSizeMB+1)))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	// Completion model
	log.Printf("🤖 Initializing %s completion client (model %s)...", cfg.LLM.Provider, cfg.LLM.Model)
	var completer pkgai.Completer
	switch cfg.LLM.Provider {
	case "openai":
		completer = pkgai.NewOpenAIClient(&cfg.LLM)
	default:
		completer = pkgai.NewOllamaClient(&cfg.LLM)
	}

	// Transcription
	log.Printf("🎙️  Initializing %s transcriber...", cfg.Transcription.Provider)
	var transcriber pkgai.Transcriber
	switch cfg.Transcription.Provider {
	case "openai":
		transcriber = pkgai.NewOpenAITranscriber(&cfg.Transcription)
	default:
		transcriber = pkgai.NewAssemblyAIClient(&cfg.Transcription, logger)
	}

	// Question cache
	log.Printf("📦 Initializing question cache (%s)...", cfg.Cache.Backend)
	questionStore, err := cache.NewQuestionStore(initCtx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize question cache: %v", err)
	}
	var questionCache quiz.QuestionCache
	if questionStore != nil {
		defer questionStore.Close()
		questionCache = questionStore
	}

	log.Println("🧠 Initializing quiz service...")
	quizService := quiz.NewService(completer, transcriber, questionCache, quiz.NewGenerationConfig(cfg), logger)

	// Uploads and optional archive
	log.Printf("📁 Preparing upload directory %s...", cfg.Uploads.Dir)
	uploads, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB<<20)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	var (
		archive    pipeline.Archive
		fileURLs   handler.FileURLs
		bucketInfo handler.BucketInfo
	)
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to MinIO...")
		minioClient, err := storage.NewMinIOClient(initCtx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		archive, fileURLs, bucketInfo = minioClient, minioClient, minioClient
		log.Printf("✅ Archiving to bucket %s", cfg.Storage.BucketName)
	} else {
		log.Println("⚠️  Storage disabled, recordings stay on local disk only")
	}

	// Processing jobs
	log.Println("⚙️  Initializing processing pipeline...")
	jobKV := cache.NewMemoryStore(time.Minute)
	defer jobKV.Close()
	pipelineService := pipeline.NewService(
		quizService,
		pipeline.NewJobStore(jobKV, cfg.Uploads.JobTTL),
		uploads,
		archive,
		pipeline.Config{
			QuestionCount:        cfg.Quiz.DefaultQuestionCount,
			TranscriptionTimeout: cfg.Transcription.Timeout,
			MaxAttempts:          cfg.Transcription.MaxAttempts,
			RetryDelay:           cfg.Transcription.RetryDelay,
		},
		logger,
	)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		handler.NewQuizHandler(quizService, logger),
		handler.NewPipelineHandler(pipelineService, fileURLs, logger),
		bucketInfo,
		logger,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		log.Printf("📚 API docs: http://%s/swagger/index.html", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}
	if err := pipelineService.Shutdown(ctx); err != nil {
		log.Printf("❌ Processing jobs did not stop in time: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
