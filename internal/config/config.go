// Package config loads and validates application configuration.
//
// Environment variables with the VACCINATION_ prefix are read (a .env
// file is loaded first if present), mapped into the Config struct via
// koanf's dot-notation keys, and validated so the process fails fast on
// missing or malformed values.
//
// Example: VACCINATION_DATABASE.HOST -> Config.Database.Host
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads .env into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix is stripped from environment variable names before they are
// mapped into koanf keys.
const envPrefix = "VACCINATION_"

// Config is the root configuration object.
//
// Redis is a pointer because it is optional: without it the rate
// limiter falls back to its in-process store.
type Config struct {
	Primary   Primary        `koanf:"primary" validate:"required"`
	Server    ServerConfig   `koanf:"server" validate:"required"`
	Database  DatabaseConfig `koanf:"database" validate:"required"`
	Logging   LoggingConfig  `koanf:"logging"`
	RateLimit RateLimit      `koanf:"rate_limit"`
	Redis     *RedisConfig   `koanf:"redis"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
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

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// RateLimit controls throttling of the read endpoints.
type RateLimit struct {
	// ReadRequestsPerMinute caps GET requests per client IP per minute.
	// Zero means use the default.
	ReadRequestsPerMinute int `koanf:"read_requests_per_minute"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// DefaultReadRequestsPerMinute is the read-endpoint rate limit applied
// when no explicit value is configured.
const DefaultReadRequestsPerMinute = 10

// Load reads, unmarshals, and validates the configuration. Failures are
// fatal: a service with broken config should not come up.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
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

	applyDefaults(mainConfig)

	return mainConfig, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		if cfg.Primary.Env == "local" {
			cfg.Logging.Format = "console"
		} else {
			cfg.Logging.Format = "json"
		}
	}
	if cfg.RateLimit.ReadRequestsPerMinute <= 0 {
		cfg.RateLimit.ReadRequestsPerMinute = DefaultReadRequestsPerMinute
	}
}
