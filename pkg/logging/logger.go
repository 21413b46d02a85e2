// Package logging provides structured logging configuration using zerolog.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output for terminal use.
	// The default is JSON, for when the library runs inside a service.
	Pretty bool

	// Output is the writer logs go to. Nil means os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the library default: JSON at info level on stderr.
func DefaultConfig() Config {
	return Config{Level: LevelInfo}
}

// Setup configures the global zerolog logger and returns it. Component
// loggers created with NewLogger derive from the configuration applied
// here.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(cfg.Level.zerologLevel())

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// zerologLevel maps a LogLevel onto zerolog's scale. Unknown values fall
// back to info rather than erroring; a typo in a config file should not
// silence or flood the logs.
func (l LogLevel) zerologLevel() zerolog.Level {
	switch strings.ToLower(string(l)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a component-scoped logger off the global one.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Outbound request flow (endpoint, query, pagination offsets)
//   - List fetch sequencing (stale responses discarded)
//   - Reference cache operations (hit/miss, key, TTL)
//
// Info: Normal operation events
//   - Successful logins and uploads
//   - List fetch completion with item counts
//
// Warn: Warning conditions that don't prevent operation
//   - Retry attempts
//   - Cache errors (fallback to direct fetch)
//   - Stale responses dropped after a newer request superseded them
//
// Error: Error conditions requiring attention
//   - Failed requests (after retries)
//   - Upload prerequisite failures
//   - Configuration errors
//
// Context Fields:
//   - endpoint: backend endpoint path
//   - status_code: HTTP status code
//   - duration: Request duration
//   - error_class: Error classification (client, server, network)
//   - page / offset / limit: pagination position
//   - seq: list fetch sequence number
