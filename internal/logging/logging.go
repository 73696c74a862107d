// SPDX-License-Identifier: MPL-2.0

// Package logging builds the charmbracelet/log loggers used by the hostkit
// CLI and installed into the assertion backend.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/hostkit/hostkit/pkg/buildmode"
)

// Options configures New. The zero value logs to stderr at DefaultLevel.
type Options struct {
	Writer io.Writer
	Prefix string
	// Level is a level name ("debug", "info", "warn", "error"). Empty
	// selects DefaultLevel.
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose         bool
	ReportTimestamp bool
}

// DefaultLevel is debug in Debug builds and info otherwise.
func DefaultLevel() log.Level {
	if buildmode.DebugEnabled {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// ParseLevel resolves a level name, treating the empty string as
// DefaultLevel.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return DefaultLevel(), nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}

// New returns a logger configured from opts.
func New(opts Options) (*log.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		lvl = log.DebugLevel
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           lvl,
		ReportTimestamp: opts.ReportTimestamp,
	}), nil
}

// Discard returns a logger that drops everything, for tests and quiet
// command paths.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
