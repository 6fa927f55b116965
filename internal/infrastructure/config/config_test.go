package config_test

import (
	"testing"
	"time"

	"github.com/iho/gobroker/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("QUOTE_BASE_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.StartingCash != "10000.00" {
		t.Fatalf("expected default starting cash 10000.00, got %s", cfg.StartingCash)
	}

	if cfg.QuoteProvider != "http" {
		t.Fatalf("expected default quote provider http, got %s", cfg.QuoteProvider)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("QUOTE_BASE_URL", "http://quotes.internal")
	t.Setenv("QUOTE_CACHE_TTL", "90s")
	t.Setenv("STARTING_CASH", "2500.50")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port 9090, got %s", cfg.HTTPPort)
	}

	if cfg.QuoteBaseURL != "http://quotes.internal" {
		t.Fatalf("expected custom quote base URL, got %s", cfg.QuoteBaseURL)
	}

	if cfg.QuoteCacheTTL != 90*time.Second {
		t.Fatalf("expected quote cache TTL 90s, got %s", cfg.QuoteCacheTTL)
	}

	if cfg.StartingCash != "2500.50" {
		t.Fatalf("expected starting cash 2500.50, got %s", cfg.StartingCash)
	}
}
