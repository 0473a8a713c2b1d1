package config

import (
	"os"
	"strconv"
	"time"

	"datascope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server Server
	Upload Upload
}

// Server holds web server settings
type Server struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Upload holds file intake settings. Limits live here, at the transport
// boundary; the profiling engine itself has no size bound.
type Upload struct {
	MaxFileSize int64
	TempDir     string
	AllowedExts []string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Port:            getEnv("PORT", "5000"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upload: Upload{
			MaxFileSize: getInt64("UPLOAD_MAX_BYTES", 16*1024*1024),
			TempDir:     getEnv("UPLOAD_TEMP_DIR", os.TempDir()),
			// Legacy .xls is deliberately absent: excelize reads OOXML only
			AllowedExts: []string{".csv", ".xlsx", ".json", ".txt"},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Upload.MaxFileSize <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
