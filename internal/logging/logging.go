// Package logging sets up curtain's file logger. Bubble Tea owns the
// terminal, so events go to a JSON file that the log viewer dialog tails.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Open creates (or appends to) the log file at path and returns a logger
// writing to it at level. Close the returned io.Closer on shutdown.
func Open(path string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, level), file, nil
}

// New returns a logger writing JSON events to w and installs it as the
// global zerolog logger.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	logger := zerolog.New(w).Level(level).With().Timestamp().Str("app", "curtain").Logger()
	log.Logger = logger
	return logger
}
