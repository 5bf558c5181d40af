package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration for the admin client
type Config struct {
	APIBaseURL   string
	ImageBaseURL string
	VideoBaseURL string

	// SessionFile is where credentials are persisted between runs.
	// When RedisURL is set, credentials are kept in Redis instead.
	SessionFile string
	RedisURL    string

	// TokenCheckInterval is how often an authenticated session is
	// re-checked for token expiry.
	TokenCheckInterval time.Duration

	HTTPTimeout time.Duration
	Environment string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		APIBaseURL:         os.Getenv("API_BASE_URL"),
		ImageBaseURL:       os.Getenv("IMAGE_BASE_URL"),
		VideoBaseURL:       os.Getenv("VIDEO_BASE_URL"),
		SessionFile:        getEnv("SESSION_FILE", defaultSessionFile()),
		RedisURL:           os.Getenv("REDIS_URL"),
		TokenCheckInterval: getEnvDuration("TOKEN_CHECK_INTERVAL", time.Minute),
		HTTPTimeout:        getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		Environment:        getEnv("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if config.APIBaseURL == "" {
		return nil, errors.New("API_BASE_URL environment variable is required")
	}

	return config, nil
}

// fileConfig mirrors Config for YAML decoding; durations are strings in
// the file ("30s", "2m") and parsed here.
type fileConfig struct {
	APIBaseURL         string `yaml:"api_base_url"`
	ImageBaseURL       string `yaml:"image_base_url"`
	VideoBaseURL       string `yaml:"video_base_url"`
	SessionFile        string `yaml:"session_file"`
	RedisURL           string `yaml:"redis_url"`
	TokenCheckInterval string `yaml:"token_check_interval"`
	HTTPTimeout        string `yaml:"http_timeout"`
	Environment        string `yaml:"environment"`
}

// LoadFile reads configuration from a YAML file
func LoadFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	config := Config{
		APIBaseURL:   raw.APIBaseURL,
		ImageBaseURL: raw.ImageBaseURL,
		VideoBaseURL: raw.VideoBaseURL,
		SessionFile:  raw.SessionFile,
		RedisURL:     raw.RedisURL,
		Environment:  raw.Environment,
	}
	if config.TokenCheckInterval, err = parseDuration(raw.TokenCheckInterval, "token_check_interval"); err != nil {
		return nil, err
	}
	if config.HTTPTimeout, err = parseDuration(raw.HTTPTimeout, "http_timeout"); err != nil {
		return nil, err
	}

	if config.APIBaseURL == "" {
		return nil, errors.New("api_base_url is required")
	}
	if config.SessionFile == "" {
		config.SessionFile = defaultSessionFile()
	}
	if config.TokenCheckInterval == 0 {
		config.TokenCheckInterval = time.Minute
	}
	if config.HTTPTimeout == 0 {
		config.HTTPTimeout = 30 * time.Second
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
	return &config, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vpadmin-session.json"
	}
	return home + "/.vpadmin/session.json"
}

func parseDuration(value, field string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Bare numbers are read as seconds
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
