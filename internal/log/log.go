// Package log builds the logrus logger used by the CLI. Logs always go to
// stderr: stdout carries the directives read by the build tool.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level ("warn", "debug", ...).
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %s", level)
	}

	logger := &logrus.Logger{
		Out:       w,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     lvl,
	}

	switch format {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %s", format)
	}
	return logger, nil
}

// NewNull returns a logger that discards everything.
func NewNull() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
