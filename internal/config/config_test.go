package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
)

var envVars = []string{
	"ARMFINDER_PORT", "ARMFINDER_METRICS_PORT", "ARMFINDER_ADMIN_TOKEN", "ARMFINDER_RATE_LIMIT",
	"ARMFINDER_DATABASE_URL", "ARMFINDER_HERMES_URL", "ARMFINDER_CATALOG_SOURCE",
	"ARMFINDER_CATALOG_PATH", "ARMFINDER_MAX_RESULTS", "ARMFINDER_CURRENCY",
	"ARMFINDER_LOG_LEVEL", "ARMFINDER_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Hermes.URL != "" {
		t.Errorf("expected hermes disabled by default, got %s", cfg.Hermes.URL)
	}
	if cfg.Catalog.Source != CatalogBuiltin {
		t.Errorf("expected builtin catalog, got %s", cfg.Catalog.Source)
	}
	if cfg.Matching.MaxResults != 3 {
		t.Errorf("expected max results 3, got %d", cfg.Matching.MaxResults)
	}
	if cfg.Currency.Code != "USD" || cfg.Currency.Locale != "en-US" {
		t.Errorf("unexpected currency %+v", cfg.Currency)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	r := cfg.Relaxation()
	expected := map[string]float64{"payload": 0.8, "reach": 0.8, "precision": 1.2, "budget": 1.2}
	actual := map[string]float64{"payload": r.Payload, "reach": r.Reach, "precision": r.Precision, "budget": r.Budget}
	for name, want := range expected {
		if math.Abs(actual[name]-want) > 0.001 {
			t.Errorf("relaxation %s: expected %f, got %f", name, want, actual[name])
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARMFINDER_PORT", "9000")
	t.Setenv("ARMFINDER_METRICS_PORT", "9001")
	t.Setenv("ARMFINDER_ADMIN_TOKEN", "secret-token")
	t.Setenv("ARMFINDER_RATE_LIMIT", "30")
	t.Setenv("ARMFINDER_DATABASE_URL", "postgres://localhost/armfinder_test")
	t.Setenv("ARMFINDER_HERMES_URL", "nats://nats:4222")
	t.Setenv("ARMFINDER_CATALOG_SOURCE", "database")
	t.Setenv("ARMFINDER_MAX_RESULTS", "1")
	t.Setenv("ARMFINDER_CURRENCY", "EUR")
	t.Setenv("ARMFINDER_LOG_LEVEL", "debug")
	t.Setenv("ARMFINDER_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Database.URL != "postgres://localhost/armfinder_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.Catalog.Source != CatalogDatabase {
		t.Errorf("expected database catalog, got '%s'", cfg.Catalog.Source)
	}
	if cfg.Matching.MaxResults != 1 {
		t.Errorf("expected max results 1, got %d", cfg.Matching.MaxResults)
	}
	if cfg.Currency.Code != "EUR" {
		t.Errorf("expected EUR, got '%s'", cfg.Currency.Code)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format 'text', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "armfinder.yaml")
	data := `
server:
  port: 8080
  admin_token: from-file
catalog:
  source: file
  path: /etc/armfinder/catalog.yaml
matching:
  max_results: 2
  relax:
    payload: 0.9
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port kept, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Catalog.Source != CatalogFile || cfg.Catalog.Path != "/etc/armfinder/catalog.yaml" {
		t.Errorf("unexpected catalog config %+v", cfg.Catalog)
	}
	if cfg.Matching.MaxResults != 2 {
		t.Errorf("expected max results 2, got %d", cfg.Matching.MaxResults)
	}
	if cfg.Matching.Relax.Payload != 0.9 || cfg.Matching.Relax.Budget != 1.2 {
		t.Errorf("unexpected relaxation %+v", cfg.Matching.Relax)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"unknown catalog source", func(c *Config) { c.Catalog.Source = "s3" }},
		{"file source without path", func(c *Config) { c.Catalog.Source = CatalogFile }},
		{"database source without url", func(c *Config) { c.Catalog.Source = CatalogDatabase }},
		{"zero max results", func(c *Config) { c.Matching.MaxResults = 0 }},
		{"max results above three", func(c *Config) { c.Matching.MaxResults = 10 }},
		{"non-English locale", func(c *Config) { c.Currency.Locale = "de-DE" }},
		{"malformed locale", func(c *Config) { c.Currency.Locale = "not a locale!" }},
		{"unknown currency", func(c *Config) { c.Currency.Code = "XYZ1" }},
		{"payload relax above one", func(c *Config) { c.Matching.Relax.Payload = 1.5 }},
		{"budget relax below one", func(c *Config) { c.Matching.Relax.Budget = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Relaxation() != matching.DefaultRelaxation() {
		t.Errorf("expected default relaxation, got %+v", cfg.Relaxation())
	}
}

func TestLoadRejectsMaxResultsAboveThree(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("matching:\n  max_results: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for max_results 10")
	}
}

func TestValidateAcceptsEnglishLocales(t *testing.T) {
	for _, locale := range []string{"en-US", "en-GB", "en"} {
		cfg := Default()
		cfg.Currency.Locale = locale
		cfg.Currency.Code = "GBP"
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: unexpected error: %v", locale, err)
		}
	}
}
