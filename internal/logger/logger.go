// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the tag
// directory server and the client runtime.
//
// The server logs JSON to stdout. The client writes to a size-rotated file
// so that CLI output stays clean. Request- and call-scoped loggers travel in
// context.Context and are retrieved with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultClientLogFile is used by NewClientLogger when no path is configured.
// Relative paths resolve against the executable's directory.
const DefaultClientLogFile = "logs/tag-client.log"

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New builds a *Logger writing JSON to w with "role", timestamp and a "func"
// caller field holding the fully-qualified function name.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns a stdout logger for role (e.g. "server").
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// NewClientLogger returns a logger that writes to path through a rotating
// lumberjack writer. An empty path selects DefaultClientLogFile.
func NewClientLogger(role, path string) *Logger {
	return New(role, newRotatingWriter(resolveLogPath(path)))
}

func newRotatingWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   false,
	}
}

func resolveLogPath(path string) string {
	if path == "" {
		path = DefaultClientLogFile
	}
	if filepath.IsAbs(path) {
		return path
	}

	execPath, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(execPath), path)
}

// Nop returns a *Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy inheriting the receiver's fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog's default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
