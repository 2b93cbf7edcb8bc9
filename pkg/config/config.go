package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	defaultAccessSecret  = "your-access-secret-change-in-production"
	defaultRefreshSecret = "your-refresh-secret-change-in-production"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig `envconfig:"DB"`
	JWT      JWTConfig
	Storage  StorageConfig
	Assembly AssemblyAIConfig `envconfig:"ASSEMBLYAI"`
	LLM      LLMConfig
	YouTube  YouTubeConfig
	Pipeline PipelineConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `split_words:"true" default:"8080"`
	Host            string   `split_words:"true" default:"0.0.0.0"`
	Environment     string   `split_words:"true" default:"development"`
	AllowedOrigins  []string `split_words:"true" default:"http://localhost:3000"`
	ShutdownTimeout int      `split_words:"true" default:"10"`
	// GenerateRatePerMinute limits pipeline runs per user
	GenerateRatePerMinute float64 `split_words:"true" default:"6"`
	GenerateBurst         int     `split_words:"true" default:"2"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string `split_words:"true" default:"postgres"` // "postgres" or "sqlite"
	Host        string `split_words:"true" default:"localhost"`
	Port        string `split_words:"true" default:"5432"`
	User        string `split_words:"true" default:"postgres"`
	Password    string `split_words:"true" default:"postgres"`
	Name        string `split_words:"true" default:"tubeblog"`
	SSLMode     string `split_words:"true" default:"disable"`
	Path        string `split_words:"true" default:"tubeblog.db"`
	MaxConns    int    `split_words:"true" default:"25"`
	MinConns    int    `split_words:"true" default:"5"`
	AutoMigrate bool   `split_words:"true" default:"false"`
	// ConnectTimeout bounds the startup ping retries
	ConnectTimeout time.Duration `split_words:"true" default:"30s"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string        `split_words:"true" default:"your-access-secret-change-in-production"`
	RefreshSecret string        `split_words:"true" default:"your-refresh-secret-change-in-production"`
	AccessExpiry  time.Duration `split_words:"true" default:"15m"`
	RefreshExpiry time.Duration `split_words:"true" default:"168h"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Enabled         bool          `split_words:"true" default:"false"`
	Endpoint        string        `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string        `split_words:"true" default:"minioadmin"`
	SecretAccessKey string        `split_words:"true" default:"minioadmin"`
	BucketName      string        `split_words:"true" default:"tubeblog"`
	UseSSL          bool          `split_words:"true" default:"false"`
	Region          string        `split_words:"true" default:"us-east-1"`
	PublicURL       string        `split_words:"true"`
	URLExpiry       time.Duration `split_words:"true" default:"24h"`
}

// AssemblyAIConfig holds speech transcription configuration.
// An empty APIKey disables the full transcription path.
type AssemblyAIConfig struct {
	APIKey  string `split_words:"true"`
	BaseURL string `split_words:"true"`
}

// LLMConfig holds the OpenAI-compatible chat completion endpoint used for
// article generation
type LLMConfig struct {
	APIKey      string  `split_words:"true"`
	BaseURL     string  `split_words:"true" default:"https://api.groq.com/openai/v1"`
	Model       string  `split_words:"true" default:"llama-3.3-70b-versatile"`
	Temperature float32 `split_words:"true" default:"0.7"`
	MaxTokens   int     `split_words:"true" default:"2048"`
}

// YouTubeConfig holds caption, metadata and audio retrieval configuration
type YouTubeConfig struct {
	// APIKey switches metadata lookups to the YouTube Data API
	APIKey           string        `split_words:"true"`
	YTDLPPath        string        `split_words:"true" default:"yt-dlp"`
	WatchBaseURL     string        `split_words:"true" default:"https://www.youtube.com"`
	CaptionLanguages []string      `split_words:"true" default:"en,en-US"`
	RequestTimeout   time.Duration `split_words:"true" default:"30s"`
}

// PipelineConfig holds the tunables of the article pipeline
type PipelineConfig struct {
	MinCaptionLength    int     `split_words:"true" default:"100"`
	FastTranscriptLimit int     `split_words:"true" default:"8000"`
	FullTranscriptLimit int     `split_words:"true" default:"3000"`
	DefaultConfidence   float64 `split_words:"true" default:"0.95"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string `split_words:"true" default:"info"`
	File       string `split_words:"true"`
	MaxSizeMB  int    `split_words:"true" default:"10"`
	MaxBackups int    `split_words:"true" default:"3"`
	MaxAgeDays int    `split_words:"true" default:"28"`
	Compress   bool   `split_words:"true" default:"true"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return LoadFromEnv()
}

// LoadFromEnv reads configuration from the process environment only
func LoadFromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.IsProduction() {
		if c.JWT.AccessSecret == defaultAccessSecret || c.JWT.RefreshSecret == defaultRefreshSecret {
			return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set in production")
		}
	}
	if c.Pipeline.MinCaptionLength < 0 {
		return fmt.Errorf("PIPELINE_MIN_CAPTION_LENGTH must not be negative")
	}
	if c.Pipeline.FastTranscriptLimit <= 0 || c.Pipeline.FullTranscriptLimit <= 0 {
		return fmt.Errorf("pipeline transcript limits must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		return fmt.Sprintf("file:%s?_foreign_keys=on", c.Database.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
