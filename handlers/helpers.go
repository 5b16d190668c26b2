// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
)

// Fixed messages returned with a 500.
const (
	msgServerError = "Server error"
)

// emptyObject encodes as {} and answers single-row lookups that found nothing.
var emptyObject = struct{}{}

// serverError logs err and answers 500 with msg. Every failure, whether a bad
// id, a bad body or a store error, ends here.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"message", msg,
		"error", err,
		"kind", db.Classify(err),
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, msg)
}

// pathID parses a numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// writeOne answers with v when found and {} otherwise.
func writeOne[T any](w http.ResponseWriter, v T, found bool) {
	if !found {
		middleware.JSONResponse(w, http.StatusOK, emptyObject)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, v)
}
