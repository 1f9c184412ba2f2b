// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /songs", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Authentication

RequireAuth validates the Authorization bearer token before invoking the
handler:

	mux.HandleFunc("POST /voting/vote", middleware.WithLogging(
		middleware.RequireAuth(cfg.TokenSecret, handler)))

Missing tokens get 401, invalid or expired tokens get 403. On success
the caller's Identity is attached to the request context:

	identity, ok := middleware.IdentityFrom(r.Context())

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
