package common

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ParseLogLevel maps a configured level name onto a zerolog level.
// Unknown names resolve to info.
func ParseLogLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds the console logger used by the binary and handed to engine components.
// Timestamps are UTC RFC3339.
//
// Parameters:
//   - level: level name (TRACE, DEBUG, INFO, WARN, ERROR)
//   - out: destination writer
//
// Returns:
//   - zerolog.Logger: the configured logger
func NewLogger(level string, out io.Writer) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).Level(ParseLogLevel(level)).With().Timestamp().Logger()
}
