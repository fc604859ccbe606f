package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Matching MatchingConfig `yaml:"matching"`
	Currency CurrencyConfig `yaml:"currency"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port"`
	MetricsPort        int    `yaml:"metrics_port"`
	AdminToken         string `yaml:"admin_token"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogDatabase = "database"
)

type CatalogConfig struct {
	Source string `yaml:"source"` // builtin, file or database
	Path   string `yaml:"path"`
}

type MatchingConfig struct {
	MaxResults int              `yaml:"max_results"`
	Relax      RelaxationConfig `yaml:"relax"`
}

type RelaxationConfig struct {
	Payload   float64 `yaml:"payload"`
	Reach     float64 `yaml:"reach"`
	Precision float64 `yaml:"precision"`
	Budget    float64 `yaml:"budget"`
}

type CurrencyConfig struct {
	Code   string `yaml:"code"`
	Locale string `yaml:"locale"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Relaxation converts the configured slack into matcher terms.
func (c *Config) Relaxation() matching.Relaxation {
	return matching.Relaxation{
		Payload:   c.Matching.Relax.Payload,
		Reach:     c.Matching.Relax.Reach,
		Precision: c.Matching.Relax.Precision,
		Budget:    c.Matching.Relax.Budget,
	}
}

// Default returns the built-in settings used before the file and environment
// are applied.
func Default() *Config {
	def := matching.DefaultRelaxation()
	return &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Catalog: CatalogConfig{
			Source: CatalogBuiltin,
		},
		Matching: MatchingConfig{
			MaxResults: matching.DefaultLimit,
			Relax: RelaxationConfig{
				Payload:   def.Payload,
				Reach:     def.Reach,
				Precision: def.Precision,
				Budget:    def.Budget,
			},
		},
		Currency: CurrencyConfig{
			Code:   "USD",
			Locale: "en-US",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var englishBase, _ = language.English.Base()

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.MetricsPort <= 0 {
		return fmt.Errorf("invalid config: ports must be positive")
	}
	switch c.Catalog.Source {
	case CatalogBuiltin:
	case CatalogFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("invalid config: catalog.path required for file source")
		}
	case CatalogDatabase:
		if c.Database.URL == "" {
			return fmt.Errorf("invalid config: database.url required for database catalog")
		}
	default:
		return fmt.Errorf("invalid config: unknown catalog source %q", c.Catalog.Source)
	}
	if c.Matching.MaxResults < 1 || c.Matching.MaxResults > matching.DefaultLimit {
		return fmt.Errorf("invalid config: matching.max_results must be between 1 and %d", matching.DefaultLimit)
	}
	tag, err := language.Parse(c.Currency.Locale)
	if err != nil {
		return fmt.Errorf("invalid config: currency.locale: %w", err)
	}
	// Prices are laid out symbol first, which only English locales expect.
	if base, _ := tag.Base(); base != englishBase {
		return fmt.Errorf("invalid config: currency.locale %q is not an English locale", c.Currency.Locale)
	}
	if _, err := currency.ParseISO(c.Currency.Code); err != nil {
		return fmt.Errorf("invalid config: currency.code: %w", err)
	}
	r := c.Matching.Relax
	if r.Payload <= 0 || r.Payload > 1 || r.Reach <= 0 || r.Reach > 1 {
		return fmt.Errorf("invalid config: payload and reach relaxation must be in (0, 1]")
	}
	if r.Precision < 1 || r.Budget < 1 {
		return fmt.Errorf("invalid config: precision and budget relaxation must be >= 1")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ARMFINDER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ARMFINDER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ARMFINDER_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("ARMFINDER_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("ARMFINDER_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ARMFINDER_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("ARMFINDER_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("ARMFINDER_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("ARMFINDER_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Matching.MaxResults = n
		}
	}
	if v := os.Getenv("ARMFINDER_CURRENCY"); v != "" {
		cfg.Currency.Code = v
	}
	if v := os.Getenv("ARMFINDER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ARMFINDER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
