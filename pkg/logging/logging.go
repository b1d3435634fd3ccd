// Package logging builds the structured loggers used across linus.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ostnam/linus/pkg/config"
)

// New creates a logger writing to w. Every line carries the same run id so
// the output of one invocation can be told apart from the next.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "linus",
		Level:           level,
		ReportTimestamp: cfg.Timestamps,
	})
	switch cfg.Format {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	case "text", "":
		logger.SetFormatter(log.TextFormatter)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	return logger.With("run", uuid.NewString()), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
