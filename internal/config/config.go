package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all analyzer configuration.
type Config struct {
	Logger  LoggerConfig  `yaml:"logger"`
	Fetcher FetcherConfig `yaml:"fetcher"`
	Web     WebConfig     `yaml:"web"`
}

// LoggerConfig holds settings for structured logging.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn" or "error"
	Format string `yaml:"format"` // "text" or "json"
}

// FetcherConfig holds settings for the HTTP page fetcher.
type FetcherConfig struct {
	Timeout          time.Duration `yaml:"timeout"`
	RetryCount       int           `yaml:"retry_count"`
	RetryWaitTime    time.Duration `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration `yaml:"retry_max_wait_time"`
	UserAgent        string        `yaml:"user_agent"`
}

// WebConfig holds settings for the web UI server.
type WebConfig struct {
	Listen string `yaml:"listen"`
}

// Defaults returns a Config populated with sensible default values.
func Defaults() Config {
	return Config{
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Fetcher: FetcherConfig{
			Timeout:          10 * time.Second,
			RetryCount:       2,
			RetryWaitTime:    1 * time.Second,
			RetryMaxWaitTime: 4 * time.Second,
			UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
		Web: WebConfig{
			Listen: ":8080",
		},
	}
}

// Load reads a YAML configuration file from path and returns a Config.
// Values not specified in the file retain their defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting it finds.
func (c Config) Validate() error {
	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logger level %q", c.Logger.Level)
	}
	switch c.Logger.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logger format %q", c.Logger.Format)
	}
	if c.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetcher timeout must be positive, got %s", c.Fetcher.Timeout)
	}
	if c.Fetcher.RetryCount < 0 {
		return fmt.Errorf("fetcher retry count must not be negative, got %d", c.Fetcher.RetryCount)
	}
	if c.Web.Listen == "" {
		return fmt.Errorf("web listen address must not be empty")
	}
	return nil
}
