// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/middleware"
	"github.com/danielhkuo/spotifi/models"
	"github.com/danielhkuo/spotifi/voting"
)

type VotingHandler struct {
	ledger *voting.Ledger
	cfg    cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: voting.NewLedger(db), cfg: cfg}
}

// AvailableSongs handles GET /voting/songs
// Returns the full catalog annotated with the caller's voted flag.
func (h *VotingHandler) AvailableSongs(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	songs, err := h.ledger.AvailableSongs(identity.ID)
	if err != nil {
		slog.Error("failed to load available songs", "error", err, "user_id", identity.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, songs)
}

// VotedSongs handles GET /voting/votedSongs
// Returns the songs the caller currently has active votes for.
func (h *VotingHandler) VotedSongs(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	songs, err := h.ledger.VotedSongs(identity.ID)
	if err != nil {
		slog.Error("failed to load voted songs", "error", err, "user_id", identity.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, songs)
}

// Vote handles POST /voting/vote
// Toggles the caller's vote for the song in the request body.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SongID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Song ID required")
		return
	}

	action, err := h.ledger.CastOrRetract(identity.ID, *req.SongID)
	if errors.Is(err, voting.ErrVoteLimitExceeded) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Maximum votes (20) reached")
		return
	}
	if errors.Is(err, voting.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid song ID")
		return
	}
	if err != nil {
		slog.Error("failed to toggle vote", "error", err, "user_id", identity.ID, "song_id", *req.SongID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote toggled", "user_id", identity.ID, "song_id", *req.SongID, "action", action)

	message := "Thank you for voting!"
	if action == voting.ActionRemoved {
		message = "Vote removed!"
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: message})
}

// Reset handles POST /voting/reset
// Deletes every vote. Idempotent.
func (h *VotingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.ledger.ResetAll(); err != nil {
		slog.Error("failed to reset votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("votes reset", "by", identity.ID)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "All votes reset"})
}
