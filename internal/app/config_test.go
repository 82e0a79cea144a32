package app

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresDSN(t *testing.T) {
	t.Setenv("DB_CONN", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without DB_CONN")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_CONN", "postgres://localhost/netzone")
	t.Setenv("PORT", "")
	t.Setenv("LOAD_TIMEOUT", "")
	t.Setenv("RELOAD_BACKOFF", "")
	t.Setenv("AUTH_ENABLED", "")
	t.Setenv("ENSURE_SCHEMA", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "4040" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.LoadTimeout != 10*time.Second {
		t.Fatalf("unexpected load timeout: %v", cfg.LoadTimeout)
	}
	if cfg.RetryBackoff != 5*time.Second {
		t.Fatalf("unexpected retry backoff: %v", cfg.RetryBackoff)
	}
	if cfg.AuthEnabled || cfg.EnsureSchema {
		t.Fatal("expected auth and schema creation to default off")
	}
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	t.Setenv("DB_CONN", "postgres://localhost/netzone")
	t.Setenv("PORT", "8081")
	t.Setenv("MATCHER", "bitwise")
	t.Setenv("LOAD_TIMEOUT", "2s")
	t.Setenv("RELOAD_BACKOFF", "30s")
	t.Setenv("ENSURE_SCHEMA", "true")
	t.Setenv("AUTH_ENABLED", "1")
	t.Setenv("AUTH_WRITE_ROLE", "zone-writer")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "8081" || cfg.Matcher != "bitwise" || cfg.LoadTimeout != 2*time.Second || cfg.RetryBackoff != 30*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.EnsureSchema || !cfg.AuthEnabled || cfg.AuthWriteRole != "zone-writer" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("DB_CONN", "postgres://localhost/netzone")
	t.Setenv("LOAD_TIMEOUT", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for bad LOAD_TIMEOUT")
	}
}
