// Package logger provides the zerolog setup shared by the rwgps binaries.
package logger

import (
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// Options controls where and how logs are written.
type Options struct {
	// Writer defaults to os.Stderr; stdout is reserved for command output
	// and the MCP stdio transport.
	Writer io.Writer
	// Console switches from JSON lines to human-readable output.
	Console bool
	Level   zerolog.Level
}

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// New returns a logger tagged with service. Call sites should use .Stack()
// on error events to include stacks.
func New(service string, opts Options) zerolog.Logger {
	// Configure zerolog to work with github.com/pkg/errors:
	// - Automatically marshal pkg/errors stack traces when present
	// - Ensure a stack is present even for std errors when .Stack() is used
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(opts.Level).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// LevelFor maps the --debug style switch onto a zerolog level.
func LevelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
