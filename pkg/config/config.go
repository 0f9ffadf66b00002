package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Sort scope constants used in CATALOG_SORT_SCOPE config field.
const (
	// SortScopeView sorts whatever view was last computed (a prior filter stays applied).
	SortScopeView = "view"
	// SortScopeCatalog always sorts the full catalog and clears any filter.
	SortScopeCatalog = "catalog"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Catalog
	CatalogSeed         bool   `conf:"default:true,env:CATALOG_SEED"`
	CatalogStrictPrices bool   `conf:"default:true,env:CATALOG_STRICT_PRICES"`
	CatalogStrictDelete bool   `conf:"default:false,env:CATALOG_STRICT_DELETE"`
	CatalogSortScope    string `conf:"default:view,enum:view|catalog,env:CATALOG_SORT_SCOPE"`
	// Number of recent catalog events kept for GET /api/catalog/activity
	CatalogActivitySize int `conf:"default:50,env:CATALOG_ACTIVITY_SIZE"`

	// Terminal UI: stdout belongs to the screen, so logs go to this file
	TUILogFile string `conf:"default:wardrobe-tui.log,env:TUI_LOG_FILE"`

	// Observability
	ServiceName    string `conf:"default:wardrobe,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
