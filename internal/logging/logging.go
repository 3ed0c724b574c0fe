// Package logging builds the zerolog loggers used across tweakreg.
//
// Loggers are created once by the host and passed explicitly to the
// components that need them. There is no package-level logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatConsole writes human-readable lines.
	FormatConsole Format = "console"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum level written.
	Level zerolog.Level
	// Format is the output encoding.
	Format Format
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// TimeFormat is used by the console format.
	TimeFormat string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// New creates a logger from the configuration.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format != FormatJSON {
		timeFormat := cfg.TimeFormat
		if timeFormat == "" {
			timeFormat = time.RFC3339
		}
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeFormat,
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel parses a level name (debug, info, warn, error).
// Unknown names fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseFormat parses a format name. Unknown names fall back to console.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatConsole
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
