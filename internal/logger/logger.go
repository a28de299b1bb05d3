// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the MiamMiam server and CLI.
//
// The Logger type embeds zerolog.Logger so all zerolog methods are available
// directly on *Logger. Request-scoped loggers travel in the context and are
// obtained with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	traceIDField  = "trace_id"
	clientLogFile = "client.log"
	clientLogDir  = "miam-miam"
)

var setupOnce sync.Once

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger writes to client.log in the user's cache directory so that
// log lines do not mix with command output. It falls back to stderr.
func NewClientLogger(role string) *Logger {
	return newLogger(clientLogWriter(), role)
}

func newLogger(w io.Writer, role string) *Logger {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func clientLogWriter() io.Writer {
	dir, err := os.UserCacheDir()
	if err != nil {
		return os.Stderr
	}

	dir = filepath.Join(dir, clientLogDir)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return os.Stderr
	}

	f, err := os.OpenFile(filepath.Join(dir, clientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagging every entry with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default context logger (disabled unless configured) is returned; the result
// is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
