// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the catalog service.
type Config struct {
	Port string

	// CatalogDir is where vendor price documents live for directory scans.
	CatalogDir string
	// SeedDir is the output directory for offline seed files.
	SeedDir string

	CMSBaseURL  string
	CMSEmail    string
	CMSPassword string

	// APIKey protects the ingestion endpoints.
	APIKey string

	WorkerCount       int
	MaxQueueSize      int
	MaxConcurrentSeed int
	MaxUploadBytes    int64
	JobTTL            time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	return Config{
		Port:              envOr("PORT", "8080"),
		CatalogDir:        envOr("CATALOG_DIR", "./catalog"),
		SeedDir:           envOr("SEED_DIR", "./seed-data"),
		CMSBaseURL:        envOr("CMS_URL", ""),
		CMSEmail:          envOr("CMS_EMAIL", ""),
		CMSPassword:       envOr("CMS_PASSWORD", ""),
		APIKey:            envOr("CATALOG_API_KEY", ""),
		WorkerCount:       envInt("WORKER_COUNT", 4),
		MaxQueueSize:      envInt("MAX_QUEUE_SIZE", 64),
		MaxConcurrentSeed: envInt("MAX_CONCURRENT_UPSERT", 5),
		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 50<<20),
		JobTTL:            envDuration("JOB_TTL", time.Hour),
	}
}

// SeedEnabled reports whether a CMS target is configured.
func (c Config) SeedEnabled() bool {
	return c.CMSBaseURL != ""
}

// Validate checks settings that have no usable default.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("CATALOG_API_KEY must be set")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1, got %d", c.WorkerCount)
	}
	if c.MaxQueueSize < 1 {
		return fmt.Errorf("MAX_QUEUE_SIZE must be at least 1, got %d", c.MaxQueueSize)
	}
	if c.SeedEnabled() && (c.CMSEmail == "" || c.CMSPassword == "") {
		return fmt.Errorf("CMS_EMAIL and CMS_PASSWORD must be set when CMS_URL is configured")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
