// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Spotifi API server.

Spotifi is a music playlist service: a song catalog, user accounts,
playlists, search, song submissions, and a shared voting system where
users endorse songs (up to 20 each) for a group selection.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... TOKEN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5020 -d "postgres://..." -token-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - TOKEN_SECRET (--token-secret): secret for session token HMAC

Optional settings:

  - PORT (-p): server port (default: 5020)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_FILE (--seed): JSON file used to seed the song catalog

A .env file in the working directory is loaded automatically.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (songs, playlists, voting, users, search)
  - voting: vote ledger and selection engine (the voting domain logic)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, bearer-token auth
  - models: request/response types
  - auth: session tokens and password hashing
  - db: schema creation and catalog seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
