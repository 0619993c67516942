// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Output formats accepted by [New].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both human-readable output and structured logging,
// so the codec CLI can switch between them from configuration.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Error logs msg together with err.
	Error(msg string, err error)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// New returns a logger for the given format writing to w.
//
// Parameters:
//   - format: [FormatText] or [FormatJSON]
//   - w: Output destination; nil discards output
//   - silent: Suppresses all output of a JSON logger
//
// Returns:
//   - Logger: Configured logger
//   - error: Error if format is unknown
func New(format string, w io.Writer, silent bool) (Logger, error) {
	if w == nil {
		w = io.Discard
	}
	switch format {
	case FormatText, "":
		l := NewCLILogger()
		if silent {
			w = io.Discard
		}
		l.SetOutput(w)
		return l, nil
	case FormatJSON:
		return NewStructuredLogger(w, silent), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Error prints msg followed by err.
func (c *CLILogger) Error(msg string, err error) { c.logger.Printf("%s: %v", msg, err) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// StructuredLogger implements Logger on top of [zerolog], writing one JSON
// object per line.
//
// StructuredLogger is safe for concurrent use by multiple goroutines.
type StructuredLogger struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	silent bool
}

// NewStructuredLogger creates a new JSON logger writing to writer.
// When silent is true every message is dropped, which keeps stdout clean when
// it carries protocol traffic.
func NewStructuredLogger(writer io.Writer, silent bool) *StructuredLogger {
	s := &StructuredLogger{silent: silent}
	s.logger = s.build(writer)
	return s
}

func (s *StructuredLogger) build(w io.Writer) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	l := zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Logger()
	if s.silent {
		l = l.Level(zerolog.Disabled)
	}
	return l
}

func (s *StructuredLogger) current() *zerolog.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l := s.logger
	return &l
}

// Printf logs an info-level message built with fmt.Sprintf semantics.
//
// Printf is safe for concurrent use by multiple goroutines.
func (s *StructuredLogger) Printf(format string, v ...any) {
	s.current().Info().Msgf(format, v...)
}

// Println logs an info-level message built with fmt.Sprint semantics.
//
// Println is safe for concurrent use by multiple goroutines.
func (s *StructuredLogger) Println(v ...any) {
	s.current().Info().Msg(fmt.Sprint(v...))
}

// Error logs an error-level message with err under the "error" key.
func (s *StructuredLogger) Error(msg string, err error) {
	s.current().Error().Err(err).Msg(msg)
}

// SetOutput sets the output destination for the structured logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (s *StructuredLogger) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = s.build(w)
}
