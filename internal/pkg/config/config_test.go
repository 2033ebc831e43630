package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("unexpected API base URL: %q", cfg.APIBaseURL)
	}
	if cfg.Storage != "file" {
		t.Errorf("unexpected storage backend: %q", cfg.Storage)
	}
	if cfg.DataDir == "" {
		t.Errorf("data dir should always resolve to a path")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CIRCUNA_API_URL", "https://api.circuna.example")
	t.Setenv("CIRCUNA_STORAGE", "redis")
	t.Setenv("CIRCUNA_DATA_DIR", "/tmp/circuna-test")
	t.Setenv("REDIS_ADDR", "redis.local:6380")

	cfg := Load()

	if cfg.APIBaseURL != "https://api.circuna.example" {
		t.Errorf("override not applied: %q", cfg.APIBaseURL)
	}
	if cfg.Storage != "redis" || cfg.Redis.Addr != "redis.local:6380" {
		t.Errorf("redis settings not applied: %+v", cfg)
	}
	if cfg.DataDir != "/tmp/circuna-test" {
		t.Errorf("data dir override not applied: %q", cfg.DataDir)
	}
}
