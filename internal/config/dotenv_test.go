package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CatalogPath != "data/catalog.json" || cfg.MaxScriptBytes != 1<<20 {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RENDER_CACHE_TTL_SECONDS", "30")
	t.Setenv("MAX_SCRIPT_BYTES", "-1")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected redis url %q", cfg.RedisURL)
	}
	if cfg.RenderCacheTTL() != 30*time.Second {
		t.Fatalf("unexpected ttl %s", cfg.RenderCacheTTL())
	}
	if cfg.MaxScriptBytes != 1<<20 {
		t.Fatalf("expected invalid limit to fall back, got %d", cfg.MaxScriptBytes)
	}
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SCRIPT_SHEETS_DOTENV_TEST=loaded\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("SCRIPT_SHEETS_DOTENV_TEST") })
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if os.Getenv("SCRIPT_SHEETS_DOTENV_TEST") != "loaded" {
		t.Fatal("expected variable from .env")
	}
}
