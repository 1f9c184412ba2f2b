// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Spotifi API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: Registration, login, and account management
  - SongHandler: Song catalog (list, get, add, like)
  - PlaylistHandler: Playlist CRUD
  - VotingHandler: Vote toggling and per-user vote views
  - ResultsHandler: Leaderboard and final selection
  - SearchHandler: Combined song/playlist search
  - SubmissionHandler: Song submissions pending moderation

Handlers are created via constructor functions that accept *sql.DB and Config:

	votingHandler := handlers.NewVotingHandler(db, cfg)

The voting handlers delegate to the voting package (Ledger and Engine),
which owns the domain rules.

# Voting Flow

Authenticated users toggle votes on catalog songs:

	GET  /voting/songs       → full catalog with per-user voted flags
	GET  /voting/votedSongs  → the caller's active votes
	POST /voting/vote        → cast or retract (body {"songId": n})
	GET  /voting/leaderboard → full catalog ranked by vote count
	GET  /voting/results     → final selection (20 songs, random padding)
	POST /voting/reset       → clear all votes

Each user holds at most 20 active votes; a cast past the cap returns 400
with a "Maximum votes" message.

# Authentication

Register and login issue session tokens:

	POST /auth/register → 201 (409 on duplicate username)
	POST /auth/login    → 200 {token}

Protected routes expect Authorization: Bearer <token>; the middleware
attaches the caller's identity to the request context, and handlers use
that identity as the vote owner - never a client-supplied user id.
*/
package handlers
