// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the typed keys under which tutorbook stores values in a
// [context.Context]. The key type is unexported so no other package can collide.
package ctxkey

type key string

const (
	// KeyRequestID carries the X-Request-ID of a view request.
	KeyRequestID key = "request_id"

	// KeyLogger carries the scoped [*log/slog.Logger].
	KeyLogger key = "logger"

	// KeySource names the front end a command came from ("repl" or "view").
	KeySource key = "source"
)
