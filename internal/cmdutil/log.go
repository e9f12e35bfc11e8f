// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

const (
	attrService = "service"
	attrRunID   = "run_id"

	serviceName = "readstats"
)

// Log encodings accepted by NewLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// LogLevel maps the quiet/verbose switches to a level. Quiet wins.
func LogLevel(quiet, verbose bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger builds the run logger on dst. Every record carries the service
// name and a fresh run id so that several runs can share one log sink.
func NewLogger(dst io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch format {
	case LogFormatText, "":
		h = slog.NewTextHandler(dst, opts)
	case LogFormatJSON:
		h = slog.NewJSONHandler(dst, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, LogFormatText, LogFormatJSON)
	}

	return slog.New(h.WithAttrs([]slog.Attr{
		slog.String(attrService, serviceName),
		slog.String(attrRunID, uuid.NewString()),
	})), nil
}
