// Package config loads service configuration by layering defaults, an
// optional YAML file, and IELTS_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	ServerAddress   string        `koanf:"server_address"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Provider selects the completion backend: "openai" or "gemini".
	Provider string `koanf:"provider"`

	OpenAIBaseURL string `koanf:"openai_base_url"`
	OpenAIAPIKey  string `koanf:"openai_api_key"`
	OpenAIModel   string `koanf:"openai_model"`

	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"`

	// DBDriver selects persistence: "sqlite" or "postgres".
	DBDriver    string `koanf:"db_driver"`
	SQLitePath  string `koanf:"sqlite_path"`
	PostgresDSN string `koanf:"postgres_dsn"`

	// FanoutWorkers caps concurrent completion calls in per-band fan-outs.
	FanoutWorkers int `koanf:"fanout_workers"`
}

// New returns the default configuration. The OpenAI defaults point at a
// local Ollama server so the service runs without any keys.
func New() *Config {
	return &Config{
		ServerAddress:   ":8080",
		ShutdownTimeout: 10 * time.Second,
		Provider:        "openai",
		OpenAIBaseURL:   "http://localhost:11434",
		OpenAIModel:     "qwen3:8b",
		GeminiModel:     "gemini-2.0-flash",
		DBDriver:        "sqlite",
		SQLitePath:      "ielts.db",
		FanoutWorkers:   4,
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if IELTS_CONFIG is set
//  3. env (prefix IELTS_)
//
// A .env file in the working directory is read into the environment first,
// matching local-dev setups.
func Load() (*Config, error) {
	_ = godotenv.Load()

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("IELTS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Map env keys like IELTS_OPENAI_MODEL -> openai_model (flat keys).
	envProvider := env.Provider("IELTS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "ielts_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAIBaseURL == "" {
			return fmt.Errorf("openai_base_url is required when provider is openai")
		}
		if c.OpenAIModel == "" {
			return fmt.Errorf("openai_model is required when provider is openai")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is required when provider is gemini")
		}
		if c.GeminiModel == "" {
			return fmt.Errorf("gemini_model is required when provider is gemini")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required when db_driver is sqlite")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres_dsn is required when db_driver is postgres")
		}
	default:
		return fmt.Errorf("unknown db_driver %q", c.DBDriver)
	}

	if c.FanoutWorkers < 1 {
		return fmt.Errorf("fanout_workers must be at least 1")
	}
	return nil
}
