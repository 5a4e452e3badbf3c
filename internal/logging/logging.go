// Package logging builds the process logger.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// Options configures New.
type Options struct {
	// Level is a zerolog level name; empty means DefaultLevel.
	Level string
	// File, when set, receives JSON logs instead of stderr.
	File string
	// Stderr is the console destination; nil means os.Stderr.
	Stderr io.Writer
	// Hold buffers console output until the closer runs. Set it while a
	// full-screen UI owns the terminal.
	Hold bool
}

// New returns a logger and a closer for its destination.
//
// Console output goes straight to Stderr unless Hold is set, in which case
// it is written when the closer runs.
func New(opts Options) (zerolog.Logger, func() error, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
		return logger, f.Close, nil
	}

	out := opts.Stderr
	if out == nil {
		out = os.Stderr
	}
	closer := noop
	if opts.Hold {
		held := &heldWriter{dst: out}
		out, closer = held, held.flush
	}
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(level).With().Timestamp().Logger(), closer, nil
}

func noop() error { return nil }

type heldWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	dst io.Writer
}

func (w *heldWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *heldWriter) flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.buf.WriteTo(w.dst)
	return err
}
