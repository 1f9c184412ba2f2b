// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/handlers"
	"github.com/danielhkuo/spotifi/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	songHandler := handlers.NewSongHandler(db, cfg)
	playlistHandler := handlers.NewPlaylistHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	searchHandler := handlers.NewSearchHandler(db, cfg)
	submissionHandler := handlers.NewSubmissionHandler(db, cfg)

	// Public routes get logging; protected routes also get bearer auth
	public := middleware.WithLogging
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(cfg.TokenSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /auth/register", public(userHandler.Register))
	mux.HandleFunc("POST /auth/login", public(userHandler.Login))
	mux.HandleFunc("GET /users", protected(userHandler.List))
	mux.HandleFunc("GET /users/{id}", protected(userHandler.Get))
	mux.HandleFunc("DELETE /users/{id}", protected(userHandler.Delete))

	// Song catalog
	mux.HandleFunc("GET /songs", public(songHandler.List))
	mux.HandleFunc("GET /songs/{id}", public(songHandler.Get))
	mux.HandleFunc("POST /songs", public(songHandler.Add))
	mux.HandleFunc("PATCH /songs/{id}/like", public(songHandler.ToggleLike))

	// Playlists
	mux.HandleFunc("GET /playlists", public(playlistHandler.List))
	mux.HandleFunc("GET /playlists/{id}", public(playlistHandler.Get))
	mux.HandleFunc("POST /playlists", protected(playlistHandler.Create))
	mux.HandleFunc("PUT /playlists/{id}", public(playlistHandler.Update))
	mux.HandleFunc("DELETE /playlists/{id}", public(playlistHandler.Delete))

	// Voting
	mux.HandleFunc("GET /voting/songs", protected(votingHandler.AvailableSongs))
	mux.HandleFunc("GET /voting/votedSongs", protected(votingHandler.VotedSongs))
	mux.HandleFunc("POST /voting/vote", protected(votingHandler.Vote))
	mux.HandleFunc("POST /voting/reset", protected(votingHandler.Reset))
	mux.HandleFunc("GET /voting/leaderboard", protected(resultsHandler.Leaderboard))
	mux.HandleFunc("GET /voting/results", protected(resultsHandler.Results))

	// Search
	mux.HandleFunc("GET /search", public(searchHandler.Search))

	// Submissions
	mux.HandleFunc("POST /submissions", protected(submissionHandler.Create))
	mux.HandleFunc("GET /submissions", protected(submissionHandler.List))
	mux.HandleFunc("PATCH /submissions/{id}/status", protected(submissionHandler.UpdateStatus))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("spotifi API v1"))
	})

	return mux
}
