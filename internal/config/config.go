// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured
// Go types, and validates that required values are present so they can
// be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Env vars are read with the GOSTORE_ prefix and mapped into nested
// struct fields via koanf's "." delimiter:
//
//	GOSTORE_SERVER.PORT -> server.port -> Config.Server.Port

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are
// injected at load time when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Store         StoreConfig          `koanf:"store"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs/traces and switch behavior per env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
// Redis backs the background job queue and the health endpoint check.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication-related secrets.
//
// The API itself is public; the secret key is only consumed when the
// Clerk auth middleware is enabled in front of selected routes.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
	Enabled   bool   `koanf:"enabled"`
}

// IntegrationConfig groups third-party service credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// StoreConfig holds store-domain tunables.
type StoreConfig struct {
	// LowStockThreshold is the stock level at or below which a product
	// appears in the low-stock report and the scheduled alert scan.
	LowStockThreshold int `koanf:"low_stock_threshold"`

	// LowStockCron is the cron expression for the low-stock scan.
	LowStockCron string `koanf:"low_stock_cron"`

	// AlertEmail receives low-stock alert emails.
	AlertEmail string `koanf:"alert_email"`
}

// Load reads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
//
// Any failure here is fatal: the process exits immediately rather than
// starting with a broken configuration.
func Load() (*Config, error) {
	// Bootstrap logger for config-time failures; the real application
	// logger does not exist yet.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Load env vars with the GOSTORE_ prefix. The mapping function strips
	// the prefix and lowercases the key; nesting comes from "." in the
	// var name (GOSTORE_DATABASE.HOST -> database.host).
	err := k.Load(env.Provider("GOSTORE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GOSTORE_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced from the primary block so
	// tracing and logging see consistent naming.
	mainConfig.Observability.ServiceName = "gostore"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	mainConfig.Store.applyDefaults()

	return mainConfig, nil
}

func (s *StoreConfig) applyDefaults() {
	if s.LowStockThreshold <= 0 {
		s.LowStockThreshold = 5
	}
	if s.LowStockCron == "" {
		// Nightly at 06:00.
		s.LowStockCron = "0 6 * * *"
	}
}
