package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults should succeed: %v", err)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("default port = %s, want 5000", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSize != 16*1024*1024 {
		t.Errorf("default max file size = %d, want 16MB", cfg.Upload.MaxFileSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSize != 1024 {
		t.Errorf("max file size = %d, want 1024", cfg.Upload.MaxFileSize)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_InvalidMaxBytesFallsBack(t *testing.T) {
	t.Setenv("UPLOAD_MAX_BYTES", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upload.MaxFileSize != 16*1024*1024 {
		t.Errorf("unparsable override should fall back to default, got %d", cfg.Upload.MaxFileSize)
	}
}
