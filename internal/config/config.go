// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultSourceTimeout bounds every outbound call to an external data source
// so one slow source cannot stall the resolution cascade.
const DefaultSourceTimeout = 6 * time.Second

// Config holds the runtime configuration read from the environment.
// Each external source key is optional: a missing key degrades that one
// adapter to a no-op, it never prevents the process from starting.
type Config struct {
	Port        int
	DatabaseURL string

	SerpAPIKey   string // knowledge-graph adapter (SerpAPI)
	GoogleAPIKey string // YouTube Data API
	GeminiAPIKey string // job-details extraction

	DatasetPath string // bulk company dataset CSV, empty disables the dataset adapter

	SourceTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          8080,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SerpAPIKey:    os.Getenv("SERP_API_KEY"),
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		DatasetPath:   os.Getenv("COMPANY_DATASET_PATH"),
		SourceTimeout: DefaultSourceTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT: %q", portStr)
		}
		cfg.Port = port
	}

	if timeoutStr := os.Getenv("SOURCE_TIMEOUT_SECONDS"); timeoutStr != "" {
		secs, err := strconv.Atoi(timeoutStr)
		if err != nil || secs < 1 {
			return nil, fmt.Errorf("invalid SOURCE_TIMEOUT_SECONDS: %q", timeoutStr)
		}
		cfg.SourceTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

// Validate checks that configuration required for serving is present.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	return nil
}
