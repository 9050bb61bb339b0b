package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Solscan analytics API configuration
	Solscan SolscanConfig

	// OpenAI summarization configuration
	OpenAI OpenAIConfig

	// Analyzer configuration
	Analyzer AnalyzerConfig

	// API server configuration
	API APIConfig

	// Redis configuration
	Redis RedisConfig

	// Logging configuration
	Log LogConfig
}

// SolscanConfig holds Solscan pro API settings
type SolscanConfig struct {
	BaseURL        string        `envconfig:"SOLSCAN_BASE_URL" default:"https://pro-api.solscan.io/v2.0"`
	APIKey         string        `envconfig:"SOLSCAN_API_KEY"`
	RequestTimeout time.Duration `envconfig:"SOLSCAN_REQUEST_TIMEOUT" default:"30s"`
	RateLimit      int           `envconfig:"SOLSCAN_RATE_LIMIT" default:"600"` // requests per minute
	PageDelay      time.Duration `envconfig:"SOLSCAN_PAGE_DELAY" default:"50ms"`
}

// OpenAIConfig holds summarization API settings
type OpenAIConfig struct {
	BaseURL        string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	APIKey         string        `envconfig:"OPENAI_API_KEY"`
	Model          string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	RequestTimeout time.Duration `envconfig:"OPENAI_REQUEST_TIMEOUT" default:"60s"`
	MaxTokens      int           `envconfig:"OPENAI_MAX_TOKENS" default:"200"`
	Temperature    float64       `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
}

// AnalyzerConfig holds holder-analysis settings
type AnalyzerConfig struct {
	// Number of top holders analyzed per run. Must be one of 10, 20, 30, 40.
	TopN int `envconfig:"TOP_N" default:"10"`
}

// APIConfig holds API server settings
type APIConfig struct {
	Host            string        `envconfig:"API_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"API_PORT" default:"8081"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"30s"`
	RateLimitRPS    int           `envconfig:"API_RATE_LIMIT_RPS" default:"100"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load loads configuration from environment variables. An optional .env file
// in the working directory is read first; real deployments set the
// environment directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required credentials are present. The process cannot
// proceed without them.
func (c *Config) Validate() error {
	if c.Solscan.APIKey == "" {
		return fmt.Errorf("SOLSCAN_API_KEY is not set")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return nil
}
