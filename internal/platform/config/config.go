// Package config loads the application settings from environment variables.
// Every setting has a default, so the program runs without any configuration;
// values are validated on load so a bad setting fails before any file is touched.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Reviews ReviewsConfig
	Logging LoggingConfig
}

// ReviewsConfig holds settings for the reviews file and how it's displayed.
type ReviewsConfig struct {
	// File is the path to the reviews CSV file, also set by --file (default: disneyland_reviews.csv)
	File string `env:"REVIEWS_FILE" default:"disneyland_reviews.csv" flag:"file"`

	// MaxRecords caps how many reviews are read from the file (default: 1000)
	MaxRecords int `env:"REVIEWS_MAX_RECORDS" default:"1000"`

	// TextWidth is the widest the review text column is drawn before wrapping (default: 50)
	TextWidth int `env:"REVIEWS_TEXT_WIDTH" default:"50"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Reviews.File) == "" {
		errs = append(errs, "REVIEWS_FILE must not be empty")
	}
	if c.Reviews.MaxRecords <= 0 {
		errs = append(errs, fmt.Sprintf("REVIEWS_MAX_RECORDS (%d) must be positive", c.Reviews.MaxRecords))
	}
	if c.Reviews.TextWidth < 10 {
		errs = append(errs, fmt.Sprintf("REVIEWS_TEXT_WIDTH (%d) must be at least 10", c.Reviews.TextWidth))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
