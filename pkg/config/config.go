package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	LLM           LLMConfig
	Transcription TranscriptionConfig
	Quiz          QuizConfig
	Cache         CacheConfig
	Redis         RedisConfig
	Storage       StorageConfig
	Uploads       UploadsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// LLMConfig holds the completion model configuration
type LLMConfig struct {
	Provider    string        `split_words:"true" default:"ollama"` // "ollama" or "openai"
	BaseURL     string        `split_words:"true" default:"http://localhost:11434"`
	Model       string        `split_words:"true" default:"llama2"`
	APIKey      string        `split_words:"true"`
	Temperature float64       `split_words:"true" default:"0.7"`
	TopP        float64       `split_words:"true" default:"0.9"`
	Stream      bool          `split_words:"true" default:"false"`
	Timeout     time.Duration `split_words:"true" default:"60s"`
}

// TranscriptionConfig holds speech-to-text configuration
type TranscriptionConfig struct {
	Provider      string        `split_words:"true" default:"assemblyai"` // "assemblyai" or "openai"
	AssemblyAIKey string        `envconfig:"ASSEMBLYAI_API_KEY"`
	OpenAIAPIKey  string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel   string        `envconfig:"OPENAI_MODEL" default:"whisper-1"`
	LanguageCode  string        `split_words:"true"`
	ChunkDuration float64       `split_words:"true" default:"300"` // seconds
	Timeout       time.Duration `split_words:"true" default:"30m"`
	MaxAttempts   int           `split_words:"true" default:"2"`
	RetryDelay    time.Duration `split_words:"true" default:"5s"`
}

// QuizConfig holds question generation defaults
type QuizConfig struct {
	DefaultQuestionCount int `split_words:"true" default:"2"`
	MaxQuestionCount     int `split_words:"true" default:"10"`
	Concurrency          int `split_words:"true" default:"4"`
}

// CacheConfig holds question cache configuration
type CacheConfig struct {
	Backend string        `split_words:"true" default:"none"` // "none", "memory" or "redis"
	TTL     time.Duration `envconfig:"CACHE_TTL" default:"24h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `split_words:"true" default:"localhost"`
	Port     string `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Enabled         bool   `split_words:"true" default:"false"`
	Endpoint        string `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"lecture-quiz"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string `envconfig:"STORAGE_PUBLIC_URL"`
}

// UploadsConfig holds configuration for uploaded recordings and processing jobs
type UploadsConfig struct {
	Dir       string        `split_words:"true" default:"uploads"`
	MaxSizeMB int64         `envconfig:"UPLOADS_MAX_SIZE_MB" default:"2048"`
	JobTTL    time.Duration `envconfig:"UPLOADS_JOB_TTL" default:"24h"`
}

// Load loads configuration from environment variables.
// Nested sections read prefixed keys, e.g. LLM_BASE_URL or QUIZ_CONCURRENCY.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "ollama", "openai":
	default:
		return fmt.Errorf("LLM_PROVIDER must be ollama or openai, got %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be within [0, 2]")
	}
	if c.LLM.TopP <= 0 || c.LLM.TopP > 1 {
		return fmt.Errorf("LLM_TOP_P must be within (0, 1]")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}

	switch c.Transcription.Provider {
	case "assemblyai", "openai":
	default:
		return fmt.Errorf("TRANSCRIPTION_PROVIDER must be assemblyai or openai, got %q", c.Transcription.Provider)
	}
	if c.Transcription.ChunkDuration <= 0 {
		return fmt.Errorf("TRANSCRIPTION_CHUNK_DURATION must be positive")
	}

	if c.Quiz.DefaultQuestionCount < 1 {
		return fmt.Errorf("QUIZ_DEFAULT_QUESTION_COUNT must be at least 1")
	}
	if c.Quiz.MaxQuestionCount < c.Quiz.DefaultQuestionCount {
		return fmt.Errorf("QUIZ_MAX_QUESTION_COUNT must not be below QUIZ_DEFAULT_QUESTION_COUNT")
	}
	if c.Quiz.Concurrency < 1 {
		return fmt.Errorf("QUIZ_CONCURRENCY must be at least 1")
	}

	switch c.Cache.Backend {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("CACHE_BACKEND must be none, memory or redis, got %q", c.Cache.Backend)
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
