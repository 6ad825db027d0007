package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Config selects level, format and destination of the logger.
type Config struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	File   string // Appended to when set

	// Quiet drops the stderr sink. The interactive UI owns the terminal,
	// so it logs to File only, or nowhere.
	Quiet bool
}

// New builds a logger from config. The returned cleanup closes the log
// file, if one was opened, and is always safe to call.
func New(config Config) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	cleanup := func() error { return nil }

	level := logrus.InfoLevel
	if config.Level != "" {
		parsed, err := logrus.ParseLevel(config.Level)
		if err != nil {
			return nil, cleanup, fmt.Errorf("invalid log level %q: %w", config.Level, err)
		}
		level = parsed
	}
	log.SetLevel(level)

	switch config.Format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return nil, cleanup, fmt.Errorf("invalid log format %q", config.Format)
	}

	var sinks []io.Writer
	if !config.Quiet {
		sinks = append(sinks, os.Stderr)
	}

	if config.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.File), 0o755); err != nil {
			return nil, cleanup, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(config.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to open log file: %w", err)
		}
		sinks = append(sinks, f)
		cleanup = f.Close
	}

	switch len(sinks) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(sinks[0])
	default:
		log.SetOutput(io.MultiWriter(sinks...))
	}

	return log, cleanup, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
