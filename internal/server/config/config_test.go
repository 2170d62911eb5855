package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != 8*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.ArchiveEnabled() {
		t.Error("archiving must be off without a bucket")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("S3_BUCKET", "exports")

	cfg := Load()

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DatabaseDSN != "postgres://u:p@db:5432/x" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if !cfg.ArchiveEnabled() {
		t.Error("archiving must be on with a bucket")
	}
}

func TestLoad_DurationSecondsFallback(t *testing.T) {
	t.Setenv("TOKEN_TTL_SECONDS", "90")

	cfg := Load()
	if cfg.TokenTTL != 90*time.Second {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
}

func TestLoad_BadDurationKeepsDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg := Load()
	if cfg.TokenTTL != 8*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
}
