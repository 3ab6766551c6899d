package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/algonest")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("expected 1h JWT TTL, got %v", cfg.JWTTTL)
	}
	if cfg.Judge0PollInterval != time.Second || cfg.Judge0MaxPolls != 30 || cfg.Judge0MaxConcurrentPolls != 16 {
		t.Errorf("unexpected poll defaults: %v %d %d", cfg.Judge0PollInterval, cfg.Judge0MaxPolls, cfg.Judge0MaxConcurrentPolls)
	}
	if cfg.SweepStaleAfter != 10*time.Minute {
		t.Errorf("expected 10m stale threshold, got %v", cfg.SweepStaleAfter)
	}
	if cfg.GoogleEnabled() {
		t.Error("google sign-in should be disabled without credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/algonest")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JUDGE0_POLL_INTERVAL", "250ms")
	t.Setenv("JUDGE0_MAX_POLLS", "5")
	t.Setenv("RUN_RATE_WINDOW", "30")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Judge0PollInterval != 250*time.Millisecond {
		t.Errorf("poll interval = %v", cfg.Judge0PollInterval)
	}
	if cfg.Judge0MaxPolls != 5 {
		t.Errorf("max polls = %d", cfg.Judge0MaxPolls)
	}
	if cfg.RunRateWindow != 30*time.Second {
		t.Errorf("plain seconds should parse, got %v", cfg.RunRateWindow)
	}
	if !cfg.CookieSecure {
		t.Error("expected secure cookies")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.PublicBaseURL != "https://api.example" {
		t.Errorf("base url = %s", cfg.PublicBaseURL)
	}
}

func TestLoad_RequiresDatabaseAndSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := Load(); err == nil {
		t.Error("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/algonest")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}
