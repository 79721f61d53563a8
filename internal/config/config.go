// Package config provides configuration management for the migration crawler.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"geoscraper/internal/models"
)

// Configuration validation errors.
var (
	ErrNoSections               = errors.New("at least one section is required")
	ErrSectionMissingName       = errors.New("section name is required")
	ErrSectionMissingPath       = errors.New("section path is required")
	ErrSectionInvalidKind       = errors.New("section kind must be press-review, article or tutorial")
	ErrNoEnabledSections        = errors.New("at least one section must be enabled")
	ErrMissingBaseURL           = errors.New("site.base_url is required")
	ErrMissingOutputDir         = errors.New("output.dir is required")
	ErrInvalidMaxAttempts       = errors.New("crawl.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("crawl.retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("crawl.retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("crawl.retry.timeout_sec must be at least 1")
	ErrInvalidRate              = errors.New("crawl.rate_per_sec must be positive")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete crawler configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Crawl   CrawlConfig   `yaml:"crawl"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig describes the legacy site being migrated.
type SiteConfig struct {
	BaseURL  string          `yaml:"base_url"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig is one crawlable listing of the legacy site.
type SectionConfig struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// RecordKind returns the section kind as a models.Kind.
func (s *SectionConfig) RecordKind() models.Kind {
	return models.Kind(s.Kind)
}

// CrawlConfig contains fetch behaviour settings.
type CrawlConfig struct {
	UserAgent  string      `yaml:"user_agent"`
	RatePerSec float64     `yaml:"rate_per_sec"`
	Burst      int         `yaml:"burst"`
	MaxPages   int         `yaml:"max_pages"`
	Retry      RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines retry behavior for page fetches.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// RenderConfig controls how records are turned into markdown documents.
type RenderConfig struct {
	AppendYearToTitle bool `yaml:"append_year_to_title"`
	ApplyAllRewrites  bool `yaml:"apply_all_rewrites"`
	StrictValidation  bool `yaml:"strict_validation"`
}

// OutputConfig defines where rendered files land.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	ItemsDump string `yaml:"items_dump"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from a YAML file, applying .env / environment
// overrides afterwards.
func Load(filepath string) (*Config, error) {
	// Load .env if present; real environment wins over file values.
	_ = godotenv.Load()

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GEOSCRAPER_BASE_URL"); v != "" {
		c.Site.BaseURL = v
	}

	if v := os.Getenv("GEOSCRAPER_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv("GEOSCRAPER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "_output"
	}

	if c.Output.ItemsDump == "" {
		c.Output.ItemsDump = "items.jl"
	}

	if c.Crawl.UserAgent == "" {
		c.Crawl.UserAgent = "geoscraper/1.0"
	}

	if c.Crawl.RatePerSec == 0 {
		c.Crawl.RatePerSec = 4
	}

	if c.Crawl.Burst == 0 {
		c.Crawl.Burst = 8
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Crawl.Retry.MaxAttempts == 0 {
		c.Crawl.Retry = RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if len(c.Site.Sections) == 0 {
		return ErrNoSections
	}

	validKinds := map[string]bool{
		string(models.KindPressReview): true,
		string(models.KindArticle):     true,
		string(models.KindTutorial):    true,
	}

	enabledCount := 0

	for i, sec := range c.Site.Sections {
		if sec.Name == "" {
			return fmt.Errorf("%w: section[%d]", ErrSectionMissingName, i)
		}

		if sec.Path == "" {
			return fmt.Errorf("%w: section[%d]", ErrSectionMissingPath, i)
		}

		if !validKinds[sec.Kind] {
			return fmt.Errorf("%w: section[%d] has %q", ErrSectionInvalidKind, i, sec.Kind)
		}

		if sec.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSections
	}

	if c.Crawl.RatePerSec <= 0 {
		return ErrInvalidRate
	}

	if c.Crawl.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Crawl.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Crawl.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Crawl.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// EnabledSections returns only enabled sections.
func (c *Config) EnabledSections() []SectionConfig {
	var enabled []SectionConfig

	for _, sec := range c.Site.Sections {
		if sec.Enabled {
			enabled = append(enabled, sec)
		}
	}

	return enabled
}

// SectionByName returns the section with the given name, if any.
func (c *Config) SectionByName(name string) (SectionConfig, bool) {
	for _, sec := range c.Site.Sections {
		if sec.Name == name {
			return sec, true
		}
	}

	return SectionConfig{}, false
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{BaseURL: %s, Sections: %d, Output: %s}",
		c.Site.BaseURL,
		len(c.Site.Sections),
		c.Output.Dir,
	)
}
