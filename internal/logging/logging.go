// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/tessro/spotify-cli/internal/config"
)

// Options controls where log output goes.
type Options struct {
	Config  config.LogConfig
	Verbose bool
	// Interactive is set when the TUI owns the terminal; stderr output is suppressed.
	Interactive bool
}

// Setup configures the standard logger and returns a closer for any opened log file.
func Setup(opts Options) (io.Closer, error) {
	return configure(log.StandardLogger(), opts)
}

func configure(logger *log.Logger, opts Options) (io.Closer, error) {
	level, err := ParseLevel(opts.Config.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if opts.Config.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Config.File), 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		return f, nil
	}

	switch {
	case opts.Interactive:
		logger.SetOutput(io.Discard)
	case opts.Verbose:
		logger.SetOutput(os.Stderr)
	default:
		logger.SetOutput(io.Discard)
	}
	return nopCloser{}, nil
}

// ParseLevel maps a config level name onto a logrus level.
func ParseLevel(s string) (log.Level, error) {
	switch s {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Discard returns a logger that drops everything, for tests and fallbacks.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
