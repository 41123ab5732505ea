package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Paths    PathsConfig
	LLM      LLMConfig
	Workers  WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// PathsConfig holds the on-disk layout for uploads and outputs.
type PathsConfig struct {
	DataDir        string
	UploadDir      string
	ProcessedDir   string
	ShortnamesPath string
	InboxDir       string // optional watched directory; empty disables the inbox
}

// LLMConfig holds provider selection and cascade tuning.
type LLMConfig struct {
	Provider            string // "openai" or "anthropic"
	APIKey              string
	BaseURL             string
	TextModel           string // fast/cheap, tier 1
	VisionModel         string // smart/expensive, tier 2
	Temperature         float32
	Timeout             time.Duration
	ConfidenceThreshold float32
}

// WorkerConfig holds the processing queue tuning.
type WorkerConfig struct {
	Count      int
	QueueSize  int
	JobTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")
	provider := getEnv("LLM_PROVIDER", "openai")

	apiKeyVar := "OPENAI_API_KEY"
	textModel := "gpt-4o-mini"
	visionModel := "gpt-4o"
	if provider == "anthropic" {
		apiKeyVar = "ANTHROPIC_API_KEY"
		textModel = "claude-haiku-4-5-20251001"
		visionModel = "claude-sonnet-4-5-20250929"
	}

	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", filepath.Join(dataDir, "pdfproc.db")),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Paths: PathsConfig{
			DataDir:        dataDir,
			UploadDir:      getEnv("UPLOAD_DIR", filepath.Join(dataDir, "uploads")),
			ProcessedDir:   getEnv("PROCESSED_DIR", filepath.Join(dataDir, "processed")),
			ShortnamesPath: getEnv("SHORTNAMES_PATH", filepath.Join(dataDir, "shortnames.json")),
			InboxDir:       getEnv("INBOX_DIR", ""),
		},
		LLM: LLMConfig{
			Provider:            provider,
			APIKey:              getEnv(apiKeyVar, ""),
			BaseURL:             getEnv("LLM_BASE_URL", ""),
			TextModel:           getEnv("MODEL_TEXT", textModel),
			VisionModel:         getEnv("MODEL_VISION", visionModel),
			Temperature:         getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			Timeout:             getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			ConfidenceThreshold: getEnvAsFloat32("CONFIDENCE_THRESHOLD", 0.85),
		},
		Workers: WorkerConfig{
			Count:      getEnvAsInt("WORKER_COUNT", 4),
			QueueSize:  getEnvAsInt("QUEUE_SIZE", 256),
			JobTimeout: getEnvAsDuration("JOB_TIMEOUT", 3*time.Minute),
		},
	}
}

// EnsureDirs creates the data directories if they do not exist.
func (c *Config) EnsureDirs() error {
	dirs := []string{c.Paths.DataDir, c.Paths.UploadDir, c.Paths.ProcessedDir}
	if c.Paths.InboxDir != "" {
		dirs = append(dirs, c.Paths.InboxDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.Provider != "openai" && c.LLM.Provider != "anthropic" {
		return NewAppError("CONFIG_ERROR", "LLM_PROVIDER must be openai or anthropic", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "provider API key is required", ErrInvalidInput)
	}
	if c.LLM.ConfidenceThreshold < 0 || c.LLM.ConfidenceThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "CONFIDENCE_THRESHOLD must be in [0,1]", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
