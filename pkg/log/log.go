// Package log builds [slog.Handler] values backed by charmbracelet/log.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatLogfmt = "logfmt"
)

var ErrUnknownFormat = errors.New("unknown log format")

// CreateHandler creates a [slog.Handler] writing to w at the given level and
// format.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           GetLevel(logLevel),
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	}), nil
}

// GetFormatter parses a log format name.
func GetFormatter(logFormat string) (log.Formatter, error) {
	switch strings.ToLower(logFormat) {
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatText, "":
		return log.TextFormatter, nil
	}

	return log.TextFormatter, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
}

// GetLevel parses a log level name. Unknown names resolve to info.
func GetLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal":
		return log.FatalLevel
	case "error":
		return log.ErrorLevel
	case "warn", "warning":
		return log.WarnLevel
	case "info":
		return log.InfoLevel
	case "debug", "trace":
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}
