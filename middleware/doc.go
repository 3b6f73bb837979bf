// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/status", middleware.WithLogging(statusHandler.Status))

Logs request start (method, path, step, remote, request_id) and completion
(status, duration_ms, request_id). The request id comes from chi's
RequestID middleware, so mount that first.

# Caching

NoStore sets Cache-Control: no-store. The wizard pages echo database and
admin settings back to the operator and must never be cached by a proxy.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
