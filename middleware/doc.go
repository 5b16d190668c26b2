// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

WithRequestID wraps the whole mux. Each request gets a UUID (or keeps the
caller's X-Request-ID), which is echoed on the response and logged:

	handler := middleware.CORS(middleware.WithRequestID(mux))

# Request Logging and Metrics

Wrap route handlers with logging and Prometheus metrics:

	mux.HandleFunc("GET /leaderboard",
		middleware.WithLogging(middleware.WithMetrics(m, "GET /leaderboard", h.Leaderboard)))

Completion is logged with status and duration_ms. Metrics are keyed by the
route pattern so path parameters do not explode label cardinality.

# CORS Middleware

Answers every origin with "*" and no credentials. Allows methods GET, POST,
PUT, DELETE, OPTIONS with headers Content-Type and X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "message")

	var req models.PersonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		...
	}

# Client IP Extraction

GetClientIP honours X-Forwarded-For and X-Real-IP; the result is logged as
"remote".
*/
package middleware
