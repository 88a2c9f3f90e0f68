// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	RapidAPI RapidAPIConfig
	Search   SearchConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// RapidAPIConfig holds the upstream flight data API settings.
// The key/host pair is the sole external credential of the system.
type RapidAPIConfig struct {
	Key     string        `env:"RAPIDAPI_KEY,required"`
	Host    string        `env:"RAPIDAPI_HOST" envDefault:"sky-scrapper.p.rapidapi.com"`
	BaseURL string        `env:"RAPIDAPI_BASE_URL" envDefault:"https://sky-scrapper.p.rapidapi.com"`
	Timeout time.Duration `env:"RAPIDAPI_TIMEOUT" envDefault:"30s"`

	// RequestsPerSecond and Burst bound the client-side request rate so a
	// burst of searches cannot trip the provider's rate limit.
	RequestsPerSecond float64 `env:"RAPIDAPI_RPS" envDefault:"5"`
	Burst             int     `env:"RAPIDAPI_BURST" envDefault:"10"`
}

// SearchConfig holds tuning knobs for the search orchestrator.
type SearchConfig struct {
	// MaxAttempts bounds the polling of an incomplete search.
	MaxAttempts int `env:"SEARCH_MAX_ATTEMPTS" envDefault:"3"`

	// BackoffUnit is the base delay between attempts; attempt n waits
	// n times this value.
	BackoffUnit time.Duration `env:"SEARCH_BACKOFF_UNIT" envDefault:"2s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.RapidAPI.Timeout <= 0 {
		return fmt.Errorf("RAPIDAPI_TIMEOUT must be positive")
	}
	if cfg.RapidAPI.RequestsPerSecond <= 0 {
		return fmt.Errorf("RAPIDAPI_RPS must be positive")
	}
	if cfg.RapidAPI.Burst < 1 {
		return fmt.Errorf("RAPIDAPI_BURST must be at least 1")
	}

	if cfg.Search.MaxAttempts < 1 {
		return fmt.Errorf("SEARCH_MAX_ATTEMPTS must be at least 1")
	}
	if cfg.Search.BackoffUnit <= 0 {
		return fmt.Errorf("SEARCH_BACKOFF_UNIT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
