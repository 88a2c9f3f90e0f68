// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// ServiceName is the name of the service for log context
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-clone"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "flight-clone",
	}
}

// Logger wraps zerolog.Logger with additional context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger with the given configuration.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with a custom output writer.
// This is useful for testing.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	l := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()

	return &Logger{Logger: l}
}

// WithComponent returns a logger tagged with a component name, so each part
// of the pipeline (client, normalizer, orchestrator) logs under its own key.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.With().Str("component", name).Logger(),
	}
}

// WithSearchID returns a logger tagged with the provider search id.
func (l *Logger) WithSearchID(searchID string) *Logger {
	return &Logger{
		Logger: l.With().Str("search_id", searchID).Logger(),
	}
}

// Nop returns a disabled logger that produces no output.
// Useful for tests where logs are noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
