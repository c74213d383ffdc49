package config_test

import (
	"testing"

	"github.com/ielts-companion/backend/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected default address :8080, got %q", cfg.ServerAddress)
	}
	if cfg.Provider != "openai" {
		t.Errorf("expected default provider openai, got %q", cfg.Provider)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected default db_driver sqlite, got %q", cfg.DBDriver)
	}
	if cfg.FanoutWorkers != 4 {
		t.Errorf("expected default fanout_workers 4, got %d", cfg.FanoutWorkers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IELTS_SERVER_ADDRESS", ":9090")
	t.Setenv("IELTS_OPENAI_MODEL", "llama3:8b")
	t.Setenv("IELTS_FANOUT_WORKERS", "8")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress != ":9090" {
		t.Errorf("expected env override for address, got %q", cfg.ServerAddress)
	}
	if cfg.OpenAIModel != "llama3:8b" {
		t.Errorf("expected env override for model, got %q", cfg.OpenAIModel)
	}
	if cfg.FanoutWorkers != 8 {
		t.Errorf("expected env override for workers, got %d", cfg.FanoutWorkers)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("IELTS_PROVIDER", "gemini")
	// No IELTS_GEMINI_API_KEY set.

	if _, err := config.Load(); err == nil {
		t.Error("expected error for gemini provider without an API key")
	}
}
