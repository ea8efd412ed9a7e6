// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil reads and writes the values tutorbook threads through a [context.Context].

The REPL and the HTTP view both call into the same logic manager. Each attaches
its own logger and source before doing so, and the storage layer picks the
logger back up when it reports loads and saves.
*/
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/tutorbook/internal/platform/ctxkey"
)

// Command sources.
const (
	SourceREPL = "repl"
	SourceView = "view"
)

// # Request Tracing

// WithRequestID attaches the view request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the view request id, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// WithSource records which front end issued the command.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, ctxkey.KeySource, source)
}

// GetSource returns the recorded front end, or "" when none was set.
func GetSource(ctx context.Context) string {
	source, _ := ctx.Value(ctxkey.KeySource).(string)
	return source
}

// # Structured Logging

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the attached logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

/*
CommandLogger returns the attached logger annotated with the command source.

View requests already carry a logger scoped to the request id, so only the
source is added here.

Parameters:
  - ctx: context.Context

Returns:
  - *slog.Logger: Never nil
*/
func CommandLogger(ctx context.Context) *slog.Logger {
	logger := GetLogger(ctx)
	if source := GetSource(ctx); source != "" {
		logger = logger.With(slog.String("source", source))
	}
	return logger
}
