// Package logger configures the application's zerolog loggers.
//
// The main logger writes human-readable console output in the local
// environment and JSON everywhere else. A dedicated pgx logger feeds
// SQL statement logging through the pgx tracelog integration.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the application logger.
//
// level is one of zerolog's level strings (debug, info, warn, error);
// unknown values fall back to info. format selects "console" or "json".
func New(level, format string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(parsed).With().Timestamp().Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// SQL statements are only interesting at debug level, so the pgx logger
// never logs below the application level.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level
// scale (tracelog.LogLevelNone=1 .. LogLevelTrace=6).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}
