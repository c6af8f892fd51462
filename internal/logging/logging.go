// apps/duel-client/internal/logging/logging.go
//
// zerolog setup for the client.
// The full-screen UI owns the terminal, so logs go to a file there; line
// mode may log to stderr instead.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects level and destination.
type Options struct {
	Level string
	File  string
	// Console sends logs to stderr when File is empty.
	Console bool
}

// Setup installs the global logger and returns a closer for the log file.
func Setup(opts Options) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	switch {
	case opts.File != "":
		if dir := filepath.Dir(opts.File); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return f, nil
	case opts.Console:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	default:
		log.Logger = zerolog.Nop()
	}
	return io.NopCloser(nil), nil
}
