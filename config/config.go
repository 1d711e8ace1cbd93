package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"
	"time"

	"github.com/andyle182810/apicheck/logutil"
	"github.com/andyle182810/apicheck/validator"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL   = "https://reqres.in/api"
	DefaultTimeoutMS = 5000
	DefaultEnvFile   = ".env"

	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderAPIKey      = "x-api-key"
	ContentTypeJSON   = "application/json"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	BaseURL   string `env:"API_BASE_URL" envDefault:"https://reqres.in/api" validate:"required,http_url"`
	TimeoutMS int    `env:"API_TIMEOUT"  envDefault:"5000"                  validate:"gt=0"`
	APIKey    string `env:"API_KEY"`

	LogLevel   string `env:"LOG_LEVEL"   envDefault:"info"`
	LogHTTPRaw string `env:"LOG_HTTP"`

	defaultHeaders map[string]string
}

// Default returns the static fallback configuration without reading the
// environment.
func Default() *Config {
	cfg := &Config{
		BaseURL:        DefaultBaseURL,
		TimeoutMS:      DefaultTimeoutMS,
		APIKey:         "",
		LogLevel:       "info",
		LogHTTPRaw:     "",
		defaultHeaders: nil,
	}
	cfg.defaultHeaders = buildDefaultHeaders(cfg.APIKey)

	return cfg
}

// New loads the dotenv file named by API_ENV_FILE (".env" when unset), parses
// the environment and validates the result. Variables already present in the
// environment win over the dotenv file.
func New() (*Config, error) {
	loadEnvFile(envFilePath())

	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validator.New().Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.defaultHeaders = buildDefaultHeaders(cfg.APIKey)

	return &cfg, nil
}

var loadOnce = sync.OnceValues(New)

// Get returns the process-wide configuration. The environment is read on the
// first call only; later calls return the same pointer and error.
func Get() (*Config, error) {
	return loadOnce()
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// DefaultHeaders returns a copy of the headers merged into every request.
func (c *Config) DefaultHeaders() map[string]string {
	return maps.Clone(c.defaultHeaders)
}

// WithBaseURL returns a copy of c that resolves requests against baseURL.
func (c *Config) WithBaseURL(baseURL string) *Config {
	clone := *c
	clone.BaseURL = baseURL
	clone.defaultHeaders = maps.Clone(c.defaultHeaders)

	return &clone
}

// WithAPIKey returns a copy of c whose default headers carry key. An empty
// key drops the header.
func (c *Config) WithAPIKey(key string) *Config {
	clone := *c
	clone.APIKey = key
	clone.defaultHeaders = buildDefaultHeaders(key)

	return &clone
}

func (c *Config) LogHTTP() bool {
	return logutil.ParseHTTPLogFlag(c.LogHTTPRaw)
}

func buildDefaultHeaders(apiKey string) map[string]string {
	headers := map[string]string{
		HeaderContentType: ContentTypeJSON,
		HeaderAccept:      ContentTypeJSON,
	}

	if apiKey != "" {
		headers[HeaderAPIKey] = apiKey
	}

	return headers
}

func envFilePath() string {
	if path := os.Getenv("API_ENV_FILE"); path != "" {
		return path
	}

	return DefaultEnvFile
}

func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		// Missing is fine: CI sets the variables directly.
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load env file")
	}
}
