// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Spotifi API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts:

	POST   /auth/register - Create account
	POST   /auth/login    - Issue session token
	GET    /users         - List users (auth)
	GET    /users/{id}    - Get user (auth)
	DELETE /users/{id}    - Delete user and their votes (auth)

Song catalog:

	GET   /songs           - Full catalog
	GET   /songs/{id}      - Single song
	POST  /songs           - Add song
	PATCH /songs/{id}/like - Toggle liked flag

Playlists:

	GET    /playlists      - All playlists
	GET    /playlists/{id} - Single playlist
	POST   /playlists      - Create (auth, max 10 per user)
	PUT    /playlists/{id} - Replace fields and song list
	DELETE /playlists/{id} - Delete

Voting (all auth):

	GET  /voting/songs       - Catalog with per-user voted flags
	GET  /voting/votedSongs  - Caller's active votes
	POST /voting/vote        - Cast or retract a vote
	POST /voting/reset       - Clear all votes
	GET  /voting/leaderboard - Full catalog ranked by votes
	GET  /voting/results     - Final padded selection

Search:

	GET /search?search_query=q&exact=bool

Submissions (all auth):

	POST  /submissions             - Submit a song for moderation
	GET   /submissions             - List submissions
	PATCH /submissions/{id}/status - Approve or reject

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

All handlers receive the database connection and configuration.
Protected routes are wrapped in middleware.RequireAuth.
*/
package router
